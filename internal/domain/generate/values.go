package generate

import (
	"strings"

	"github.com/fatih/camelcase"
)

// literalFor picks a placeholder literal for a parameter based on its
// resolved type label. Anything unrecognized gets a string placeholder.
func literalFor(typeLabel string) string {
	t := strings.ToLower(typeLabel)
	switch {
	case strings.Contains(t, "int") || strings.Contains(t, "number"):
		return "1"
	case strings.Contains(t, "float") || strings.Contains(t, "decimal"):
		return "1.0"
	case strings.Contains(t, "bool"):
		return "True"
	case strings.Contains(t, "list") || strings.Contains(t, "array"):
		return "[]"
	case strings.Contains(t, "dict") || strings.Contains(t, "object"):
		return "{}"
	default:
		return "'test_value'"
	}
}

func isNumericLabel(typeLabel string) bool {
	t := strings.ToLower(typeLabel)
	return strings.Contains(t, "int") || strings.Contains(t, "number") ||
		strings.Contains(t, "float") || strings.Contains(t, "decimal")
}

func isStringLabel(typeLabel string) bool {
	return strings.Contains(strings.ToLower(typeLabel), "str")
}

func isListLabel(typeLabel string) bool {
	t := strings.ToLower(typeLabel)
	return strings.Contains(t, "list") || strings.Contains(t, "array")
}

// pascal turns calculate_total or parseJSON into CalculateTotal / ParseJSON
// for generated test-class names.
func pascal(name string) string {
	var out strings.Builder
	for _, part := range splitWords(name) {
		out.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return out.String()
}

// snake turns OrderProcessor into order_processor for generated test names.
func snake(name string) string {
	words := splitWords(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

func splitWords(name string) []string {
	var words []string
	for _, part := range strings.Split(name, "_") {
		for _, w := range camelcase.Split(part) {
			if w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}
