package analysis

import (
	"fmt"
	"strings"

	"github.com/testforge/testforge/internal/domain"
)

// minDocstringLength is the shortest docstring that counts as documentation.
const minDocstringLength = 20

// analyzeDocumentation measures the share of test functions carrying a
// meaningful docstring: longer than 20 characters and naming what the test
// verifies.
func analyzeDocumentation(path string, tests []testCase, cfg domain.QualityConfig) (float64, []domain.Issue) {
	keywords := cfg.DocstringKeywords()

	documented := 0
	var issues []domain.Issue

	for _, t := range tests {
		doc := strings.TrimSpace(t.fn.Docstring)
		if len(doc) > minDocstringLength && containsAny(strings.ToLower(doc), keywords) {
			documented++
			continue
		}

		issues = append(issues, domain.Issue{
			FilePath:    path,
			LineNumber:  t.fn.StartLine,
			Type:        domain.IssueMissingDocumentation,
			Severity:    domain.SeverityLow,
			Description: fmt.Sprintf("Test function '%s' lacks proper documentation", t.fn.Name),
			Suggestion:  "Add a descriptive docstring explaining what the test verifies",
		})
	}

	return percentage(documented, len(tests)), issues
}
