package analysis

import (
	"strings"

	"github.com/testforge/testforge/internal/domain"
)

// analyzeErrorScenarios measures the share of test functions exercising
// failure paths, matched by the error vocabulary or the raise-assertion
// idiom. This pass emits no issues on its own; low coverage surfaces through
// the aggregator's recommendations.
func analyzeErrorScenarios(tests []testCase, cfg domain.QualityConfig) float64 {
	indicators := cfg.ErrorScenarioIndicators()

	matched := 0
	for _, t := range tests {
		if containsAny(t.lowered, indicators) || hasRaiseAssertion(t.raw) {
			matched++
		}
	}

	return percentage(matched, len(tests))
}

func hasRaiseAssertion(text string) bool {
	return strings.Contains(text, "pytest.raises") || strings.Contains(text, "with raises")
}
