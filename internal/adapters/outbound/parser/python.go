// Package parser builds structural source models from Python files using
// tree-sitter.
package parser

import (
	"path/filepath"
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/testforge/testforge/internal/domain"
)

// PythonExtractor implements domain.ModuleExtractor on top of the
// tree-sitter Python grammar. A file that fails to parse yields a degraded
// module, never an error: the error return is reserved for grammar setup.
type PythonExtractor struct {
	lang        *sitter.Language
	sourceRoots []string
}

// New creates an extractor. sourceRoots are top-level directory names
// stripped when deriving dotted import paths; empty means the defaults.
func New(sourceRoots ...string) *PythonExtractor {
	if len(sourceRoots) == 0 {
		sourceRoots = domain.DefaultSourceRootDirs
	}
	return &PythonExtractor{
		lang:        sitter.NewLanguage(tree_sitter_python.Language()),
		sourceRoots: sourceRoots,
	}
}

func (e *PythonExtractor) Extract(path string, content []byte) (*domain.SourceModule, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(e.lang)

	module := &domain.SourceModule{
		Name:       moduleName(path),
		ImportPath: e.importPath(path),
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		module.ParseError = "parse produced no tree"
		return module, nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		module.ParseError = "syntax error"
		return module, nil
	}

	for i := uint(0); i < root.ChildCount(); i++ {
		e.extractTopLevel(module, root.Child(i), content)
	}

	return module, nil
}

func (e *PythonExtractor) extractTopLevel(module *domain.SourceModule, node *sitter.Node, src []byte) {
	switch node.Kind() {
	case "function_definition":
		module.Functions = append(module.Functions, e.function(node, src, nil))
	case "class_definition":
		module.Classes = append(module.Classes, e.class(node, src))
	case "decorated_definition":
		decorators, inner := unwrapDecorated(node, src)
		if inner == nil {
			return
		}
		switch inner.Kind() {
		case "function_definition":
			module.Functions = append(module.Functions, e.function(inner, src, decorators))
		case "class_definition":
			module.Classes = append(module.Classes, e.class(inner, src))
		}
	case "import_statement":
		module.Imports = append(module.Imports, plainImports(node, src)...)
	case "import_from_statement":
		module.Imports = append(module.Imports, fromImports(node, src)...)
	case "expression_statement":
		if c := constantAssignment(node, src); c != nil {
			module.Constants = append(module.Constants, *c)
		}
	}
}

func (e *PythonExtractor) function(node *sitter.Node, src []byte, decorators []string) domain.FunctionSignature {
	fn := domain.FunctionSignature{
		Name:       text(node.ChildByFieldName("name"), src),
		Params:     parameters(node.ChildByFieldName("parameters"), src),
		ReturnType: typeLabel(node.ChildByFieldName("return_type"), src),
		Decorators: decorators,
		StartLine:  int(node.StartPosition().Row) + 1,
		EndLine:    int(node.EndPosition().Row) + 1,
	}

	body := node.ChildByFieldName("body")
	fn.Docstring = docstring(body, src)
	fn.Assertions = countAsserts(body)
	fn.IsDunder = strings.HasPrefix(fn.Name, "__") && strings.HasSuffix(fn.Name, "__")

	return fn
}

func (e *PythonExtractor) class(node *sitter.Node, src []byte) domain.ClassSignature {
	cls := domain.ClassSignature{
		Name:      text(node.ChildByFieldName("name"), src),
		StartLine: int(node.StartPosition().Row) + 1,
		EndLine:   int(node.EndPosition().Row) + 1,
	}

	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := uint(0); i < supers.ChildCount(); i++ {
			child := supers.Child(i)
			switch child.Kind() {
			case "identifier", "attribute":
				cls.Bases = append(cls.Bases, text(child, src))
			}
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return cls
	}
	cls.Docstring = docstring(body, src)

	for i := uint(0); i < body.ChildCount(); i++ {
		child := body.Child(i)
		switch child.Kind() {
		case "function_definition":
			cls.Methods = append(cls.Methods, e.function(child, src, nil))
		case "decorated_definition":
			decorators, inner := unwrapDecorated(child, src)
			if inner != nil && inner.Kind() == "function_definition" {
				cls.Methods = append(cls.Methods, e.function(inner, src, decorators))
			}
		case "expression_statement":
			if p := propertyAssignment(child, src); p != nil {
				cls.Properties = append(cls.Properties, *p)
			}
		}
	}

	return cls
}

// parameters flattens a parameter list, dropping self/cls and punctuation.
func parameters(node *sitter.Node, src []byte) []domain.Parameter {
	if node == nil {
		return nil
	}

	var params []domain.Parameter
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		var p domain.Parameter

		switch child.Kind() {
		case "identifier":
			p = domain.Parameter{Name: text(child, src), TypeLabel: "Any"}
		case "typed_parameter":
			p = domain.Parameter{
				Name:      firstIdentifier(child, src),
				TypeLabel: typeLabel(child.ChildByFieldName("type"), src),
			}
		case "default_parameter":
			p = domain.Parameter{
				Name:      text(child.ChildByFieldName("name"), src),
				TypeLabel: "Any",
				Default:   text(child.ChildByFieldName("value"), src),
			}
		case "typed_default_parameter":
			p = domain.Parameter{
				Name:      text(child.ChildByFieldName("name"), src),
				TypeLabel: typeLabel(child.ChildByFieldName("type"), src),
				Default:   text(child.ChildByFieldName("value"), src),
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			p = domain.Parameter{Name: text(child, src), TypeLabel: "Any"}
		default:
			continue
		}

		if p.Name == "" || p.Name == "self" || p.Name == "cls" {
			continue
		}
		params = append(params, p)
	}

	return params
}

// typeLabel resolves an annotation node to a printable label. Unrecognized
// node kinds collapse to Any rather than leaking raw syntax.
func typeLabel(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case "type":
		// Annotation wrapper; resolve the inner expression.
		if node.ChildCount() > 0 {
			return typeLabel(node.Child(0), src)
		}
		return "Any"
	case "identifier", "string":
		return text(node, src)
	case "attribute":
		return text(node.ChildByFieldName("object"), src) + "." + text(node.ChildByFieldName("attribute"), src)
	case "subscript", "generic_type":
		return text(node, src)
	case "none":
		return "None"
	default:
		return "Any"
	}
}

func unwrapDecorated(node *sitter.Node, src []byte) ([]string, *sitter.Node) {
	var decorators []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == "decorator" {
			decorators = append(decorators, strings.TrimPrefix(text(child, src), "@"))
		}
	}
	return decorators, node.ChildByFieldName("definition")
}

func plainImports(node *sitter.Node, src []byte) []domain.ImportRecord {
	var records []domain.ImportRecord
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "dotted_name", "identifier":
			records = append(records, domain.ImportRecord{Kind: "import", Module: text(child, src)})
		case "aliased_import":
			records = append(records, domain.ImportRecord{
				Kind:   "import",
				Module: text(child.ChildByFieldName("name"), src),
				Alias:  text(child.ChildByFieldName("alias"), src),
			})
		}
	}
	return records
}

func fromImports(node *sitter.Node, src []byte) []domain.ImportRecord {
	var module string
	var records []domain.ImportRecord
	sawImport := false

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "import":
			sawImport = true
		case "relative_import":
			module = text(child, src)
		case "dotted_name", "identifier":
			if !sawImport {
				module = text(child, src)
			} else {
				records = append(records, domain.ImportRecord{
					Kind: "from_import", Module: module, Name: text(child, src),
				})
			}
		case "aliased_import":
			records = append(records, domain.ImportRecord{
				Kind:   "from_import",
				Module: module,
				Name:   text(child.ChildByFieldName("name"), src),
				Alias:  text(child.ChildByFieldName("alias"), src),
			})
		case "wildcard_import":
			records = append(records, domain.ImportRecord{Kind: "from_import", Module: module, Name: "*"})
		}
	}

	return records
}

// constantAssignment recognizes NAME = value statements where NAME is all
// uppercase.
func constantAssignment(node *sitter.Node, src []byte) *domain.ConstantRecord {
	assign := firstChildOfKind(node, "assignment")
	if assign == nil {
		return nil
	}
	left := assign.ChildByFieldName("left")
	if left == nil || left.Kind() != "identifier" {
		return nil
	}
	name := text(left, src)
	if !isUpperIdentifier(name) {
		return nil
	}
	return &domain.ConstantRecord{Name: name, Value: text(assign.ChildByFieldName("right"), src)}
}

func propertyAssignment(node *sitter.Node, src []byte) *domain.PropertyRecord {
	assign := firstChildOfKind(node, "assignment")
	if assign == nil {
		return nil
	}
	left := assign.ChildByFieldName("left")
	if left == nil || left.Kind() != "identifier" {
		return nil
	}
	return &domain.PropertyRecord{Name: text(left, src), Value: text(assign.ChildByFieldName("right"), src)}
}

// docstring returns the unquoted leading string literal of a block, if any.
func docstring(body *sitter.Node, src []byte) string {
	if body == nil || body.ChildCount() == 0 {
		return ""
	}
	first := body.Child(0)
	if first.Kind() != "expression_statement" || first.ChildCount() == 0 {
		return ""
	}
	str := first.Child(0)
	if str.Kind() != "string" {
		return ""
	}
	return stripQuotes(text(str, src))
}

// countAsserts counts assert statements anywhere inside the node. Calls to
// assertion helpers are deliberately not counted.
func countAsserts(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.Kind() == "assert_statement" {
		count++
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		count += countAsserts(node.Child(i))
	}
	return count
}

func firstChildOfKind(node *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child.Kind() == kind {
			return child
		}
	}
	return nil
}

func firstIdentifier(node *sitter.Node, src []byte) string {
	if node.Kind() == "identifier" {
		return text(node, src)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if name := firstIdentifier(node.Child(i), src); name != "" {
			return name
		}
	}
	return ""
}

func text(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	return string(src[node.StartByte():node.EndByte()])
}

func stripQuotes(s string) string {
	for _, q := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	return s
}

func isUpperIdentifier(name string) bool {
	hasLetter := false
	for _, r := range name {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r):
			hasLetter = true
		}
	}
	return hasLetter
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// importPath converts a relative file path into the dotted path used in
// generated from-imports, stripping a leading source root directory.
func (e *PythonExtractor) importPath(path string) string {
	clean := filepath.ToSlash(path)
	clean = strings.TrimSuffix(clean, filepath.Ext(clean))
	segments := strings.Split(clean, "/")

	if len(segments) > 1 {
		for _, root := range e.sourceRoots {
			if segments[0] == root {
				segments = segments[1:]
				break
			}
		}
	}

	return strings.Join(segments, ".")
}
