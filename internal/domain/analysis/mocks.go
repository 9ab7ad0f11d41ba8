package analysis

import (
	"fmt"
	"strings"

	"github.com/testforge/testforge/internal/domain"
)

// analyzeMockUsage counts mock-vocabulary occurrences per test function. A
// function with a non-zero count at or below the configured ceiling is
// isolated; exceeding the ceiling flags the function and excludes it from
// the isolated count.
func analyzeMockUsage(path string, tests []testCase, cfg domain.QualityConfig) (float64, []domain.Issue) {
	indicators := countableIndicators(cfg.MockUsageIndicators())

	isolated := 0
	var issues []domain.Issue

	for _, t := range tests {
		count := 0
		for _, indicator := range indicators {
			count += strings.Count(t.lowered, indicator)
		}

		switch {
		case count > 0 && count <= cfg.MaxMockObjectsPerTest:
			isolated++
		case count > cfg.MaxMockObjectsPerTest:
			issues = append(issues, domain.Issue{
				FilePath:    path,
				LineNumber:  t.fn.StartLine,
				Type:        domain.IssueTooManyMocks,
				Severity:    domain.SeverityMedium,
				Description: fmt.Sprintf("Test '%s' uses %d mock objects", t.fn.Name, count),
				Suggestion:  "Consider simplifying the test or breaking it into multiple focused tests",
			})
		}
	}

	return percentage(isolated, len(tests)), issues
}

// countableIndicators drops any indicator that contains a shorter one from
// the same vocabulary, so a single MagicMock occurrence counts once (through
// "mock") rather than once per overlapping indicator.
func countableIndicators(indicators []string) []string {
	kept := make([]string, 0, len(indicators))
	for i, indicator := range indicators {
		overlaps := false
		for j, other := range indicators {
			if i != j && len(other) < len(indicator) && strings.Contains(indicator, other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, indicator)
		}
	}
	return kept
}
