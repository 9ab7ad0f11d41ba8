package analysis

import (
	"fmt"

	"github.com/testforge/testforge/internal/domain"
)

// analyzeMaintainability counts a test as maintainable when its line span
// lies within the configured bounds and its name stays descriptive after the
// test_ prefix. Oversized functions are flagged.
func analyzeMaintainability(path string, tests []testCase, cfg domain.QualityConfig) (float64, []domain.Issue) {
	maintainable := 0
	var issues []domain.Issue

	for _, t := range tests {
		span := t.fn.LineSpan()

		switch {
		case span >= cfg.MinTestLength && span <= cfg.MaxTestLength && t.fn.DescriptiveName():
			maintainable++
		case span > cfg.MaxTestLength:
			issues = append(issues, domain.Issue{
				FilePath:    path,
				LineNumber:  t.fn.StartLine,
				Type:        domain.IssueTestTooLong,
				Severity:    domain.SeverityMedium,
				Description: fmt.Sprintf("Test function '%s' is too long (%d lines)", t.fn.Name, span),
				Suggestion:  "Break down into multiple smaller, focused test functions",
			})
		}
	}

	return percentage(maintainable, len(tests)), issues
}
