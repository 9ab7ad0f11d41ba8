package analysis

import (
	"fmt"

	"github.com/testforge/testforge/internal/domain"
)

// analyzeStructure checks each test function's length and literal assertion
// count against the configured minimums.
func analyzeStructure(path string, tests []testCase, cfg domain.QualityConfig) []domain.Issue {
	var issues []domain.Issue

	for _, t := range tests {
		if t.fn.LineSpan() < cfg.MinTestLength {
			issues = append(issues, domain.Issue{
				FilePath:    path,
				LineNumber:  t.fn.StartLine,
				Type:        domain.IssueTestTooShort,
				Severity:    domain.SeverityMedium,
				Description: fmt.Sprintf("Test function '%s' is too short (%d lines)", t.fn.Name, t.fn.LineSpan()),
				Suggestion:  "Add more comprehensive test scenarios or combine with related tests",
			})
		}

		if t.fn.Assertions < cfg.MinAssertionsPerTest {
			issues = append(issues, domain.Issue{
				FilePath:    path,
				LineNumber:  t.fn.StartLine,
				Type:        domain.IssueInsufficientAsserts,
				Severity:    domain.SeverityMedium,
				Description: fmt.Sprintf("Test function '%s' has only %d assertions", t.fn.Name, t.fn.Assertions),
				Suggestion:  "Add more assertions to verify expected behavior thoroughly",
			})
		}
	}

	return issues
}
