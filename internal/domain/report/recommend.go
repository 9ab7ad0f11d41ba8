package report

import (
	"fmt"

	"github.com/testforge/testforge/internal/domain"
)

// Fixed floors for the isolation and documentation recommendations.
const (
	minIsolationScore     = 70.0
	minDocumentationScore = 70.0
)

// Recommend produces improvement recommendations from the aggregate metrics
// and issue summary, each embedding the offending metric's current value.
func Recommend(metrics domain.QualityMetrics, summary domain.IssueSummary, cfg domain.QualityConfig) []string {
	var recs []string

	if metrics.BusinessLogicCoverage < cfg.MinBusinessLogicThreshold {
		recs = append(recs, fmt.Sprintf(
			"Improve business logic coverage (currently %.1f%%). "+
				"Add tests that verify core functionality and user workflows.",
			metrics.BusinessLogicCoverage))
	}

	if metrics.ErrorScenarioCoverage < cfg.MinErrorScenarioThreshold {
		recs = append(recs, fmt.Sprintf(
			"Add more error scenario tests (currently %.1f%%). "+
				"Test edge cases, invalid inputs, and failure conditions.",
			metrics.ErrorScenarioCoverage))
	}

	if metrics.MockIsolationScore < minIsolationScore {
		recs = append(recs, fmt.Sprintf(
			"Improve test isolation (currently %.1f%%). "+
				"Ensure tests are properly isolated and don't depend on external systems.",
			metrics.MockIsolationScore))
	}

	if metrics.DocumentationScore < minDocumentationScore {
		recs = append(recs, fmt.Sprintf(
			"Improve test documentation (currently %.1f%%). "+
				"Add descriptive docstrings to explain test purpose and expected behavior.",
			metrics.DocumentationScore))
	}

	if summary.BySeverity.High > 0 || summary.BySeverity.Critical > 0 {
		recs = append(recs, fmt.Sprintf(
			"Address %d high and %d critical priority issues first.",
			summary.BySeverity.High, summary.BySeverity.Critical))
	}

	return recs
}
