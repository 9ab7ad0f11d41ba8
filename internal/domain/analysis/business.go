package analysis

import (
	"fmt"

	"github.com/testforge/testforge/internal/domain"
)

// analyzeBusinessLogic measures the share of test functions whose source
// text mentions one of the configured action-verb prefixes. Below the
// configured threshold the file gets a low_business_logic_coverage issue.
func analyzeBusinessLogic(path string, tests []testCase, cfg domain.QualityConfig) (float64, []domain.Issue) {
	indicators := cfg.BusinessIndicators()

	matched := 0
	for _, t := range tests {
		if containsAny(t.lowered, indicators) {
			matched++
		}
	}

	coverage := percentage(matched, len(tests))

	var issues []domain.Issue
	if coverage < cfg.MinBusinessLogicThreshold {
		issues = append(issues, domain.Issue{
			FilePath:    path,
			LineNumber:  1,
			Type:        domain.IssueLowBusinessCoverage,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("Low business logic coverage: %.1f%%", coverage),
			Suggestion:  "Add tests that verify core business logic and user workflows",
		})
	}

	return coverage, issues
}
