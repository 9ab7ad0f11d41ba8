package domain

import "strings"

// SourceModule is a language-neutral structural description of one source
// file: its functions, classes, imports, and constants. It is built once per
// file by an extractor and never mutated afterwards.
type SourceModule struct {
	Name       string              `json:"name"`
	ImportPath string              `json:"import_path"`
	Functions  []FunctionSignature `json:"functions"`
	Classes    []ClassSignature    `json:"classes"`
	Imports    []ImportRecord      `json:"imports,omitempty"`
	Constants  []ConstantRecord    `json:"constants,omitempty"`

	// ParseError is set when the source could not be parsed. A degraded
	// module carries the error string and empty element lists.
	ParseError string `json:"error,omitempty"`
}

// IsDegraded reports whether extraction failed and the module carries no
// structural information.
func (m *SourceModule) IsDegraded() bool { return m.ParseError != "" }

// TestFunctions returns every function whose name begins with "test_",
// whether defined at module level or as a class method.
func (m *SourceModule) TestFunctions() []FunctionSignature {
	var fns []FunctionSignature
	for _, f := range m.Functions {
		if f.IsTest() {
			fns = append(fns, f)
		}
	}
	for _, c := range m.Classes {
		for _, method := range c.Methods {
			if method.IsTest() {
				fns = append(fns, method)
			}
		}
	}
	return fns
}

// PublicFunctions returns module-level functions without a leading underscore.
func (m *SourceModule) PublicFunctions() []FunctionSignature {
	var fns []FunctionSignature
	for _, f := range m.Functions {
		if !f.IsPrivate() {
			fns = append(fns, f)
		}
	}
	return fns
}

// PublicClasses returns classes without a leading underscore.
func (m *SourceModule) PublicClasses() []ClassSignature {
	var classes []ClassSignature
	for _, c := range m.Classes {
		if !c.IsPrivate() {
			classes = append(classes, c)
		}
	}
	return classes
}

// FunctionSignature describes one function or method.
type FunctionSignature struct {
	Name       string      `json:"name"`
	Params     []Parameter `json:"parameters"`
	ReturnType string      `json:"return_type,omitempty"`
	Docstring  string      `json:"docstring,omitempty"`
	Decorators []string    `json:"decorators,omitempty"`
	StartLine  int         `json:"start_line"`
	EndLine    int         `json:"end_line"`

	// Assertions is the count of literal assert statements in the body.
	Assertions int `json:"assertions"`

	// IsDunder marks double-underscore-bracketed method names (__init__).
	IsDunder bool `json:"is_dunder,omitempty"`
}

const testPrefix = "test_"

func (f FunctionSignature) IsPrivate() bool { return strings.HasPrefix(f.Name, "_") }

// IsTest reports whether the function name carries the test_ prefix.
func (f FunctionSignature) IsTest() bool { return strings.HasPrefix(f.Name, testPrefix) }

// LineSpan is the number of lines the definition covers.
func (f FunctionSignature) LineSpan() int { return f.EndLine - f.StartLine }

// DescriptiveName reports whether the part after the test_ prefix still
// contains an underscore (test_calculate_total, not test_calc).
func (f FunctionSignature) DescriptiveName() bool {
	return strings.Contains(strings.TrimPrefix(f.Name, testPrefix), "_")
}

// Parameter is one declared parameter with its inferred type label.
type Parameter struct {
	Name      string `json:"name"`
	TypeLabel string `json:"type"`
	Default   string `json:"default,omitempty"`
}

// ClassSignature describes one class definition.
type ClassSignature struct {
	Name       string              `json:"name"`
	Bases      []string            `json:"bases,omitempty"`
	Methods    []FunctionSignature `json:"methods"`
	Properties []PropertyRecord    `json:"properties,omitempty"`
	Docstring  string              `json:"docstring,omitempty"`
	StartLine  int                 `json:"start_line"`
	EndLine    int                 `json:"end_line"`
}

func (c ClassSignature) IsPrivate() bool { return strings.HasPrefix(c.Name, "_") }

// PropertyRecord is a class-level name/value assignment.
type PropertyRecord struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ImportRecord is one import statement target.
type ImportRecord struct {
	Kind   string `json:"type"` // "import" or "from_import"
	Module string `json:"module"`
	Name   string `json:"name,omitempty"`
	Alias  string `json:"alias,omitempty"`
}

// ConstantRecord is a module-level assignment to an all-uppercase identifier.
type ConstantRecord struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}
