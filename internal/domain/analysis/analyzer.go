// Package analysis implements the heuristic quality passes over a test
// file's structural model and raw text.
package analysis

import (
	"strings"

	"github.com/testforge/testforge/internal/domain"
)

// testCase pairs one test function with the raw and lowercased text of its
// line span, so every pass works from the same view of the source.
type testCase struct {
	fn      domain.FunctionSignature
	raw     string
	lowered string
}

// Analyze runs the six quality passes over one test file and returns its
// metrics plus every issue found. Passes are independent; each reads the
// same parsed model and text and only appends issues. The path is carried
// onto every issue so the report can distinguish same-named files in
// different directories.
//
// RealisticDataScore is never assigned; it stays 0 and contributes nothing
// to the weighted overall score.
func Analyze(path string, module *domain.SourceModule, content []byte, cfg domain.QualityConfig) (domain.QualityMetrics, []domain.Issue) {
	tests := collectTestCases(module, content)

	var metrics domain.QualityMetrics
	var issues []domain.Issue

	issues = append(issues, analyzeStructure(path, tests, cfg)...)

	business, businessIssues := analyzeBusinessLogic(path, tests, cfg)
	metrics.BusinessLogicCoverage = business
	issues = append(issues, businessIssues...)

	metrics.ErrorScenarioCoverage = analyzeErrorScenarios(tests, cfg)

	mock, mockIssues := analyzeMockUsage(path, tests, cfg)
	metrics.MockIsolationScore = mock
	issues = append(issues, mockIssues...)

	doc, docIssues := analyzeDocumentation(path, tests, cfg)
	metrics.DocumentationScore = doc
	issues = append(issues, docIssues...)

	maint, maintIssues := analyzeMaintainability(path, tests, cfg)
	metrics.MaintenanceScore = maint
	issues = append(issues, maintIssues...)

	metrics.OverallQualityScore = OverallScore(metrics, cfg)

	return metrics, issues
}

// OverallScore is the weighted sum of the sub-metrics, clamped to [0, 100]
// even when the caller supplies looser weights.
func OverallScore(m domain.QualityMetrics, cfg domain.QualityConfig) float64 {
	score := m.BusinessLogicCoverage*cfg.BusinessLogicWeight +
		m.ErrorScenarioCoverage*cfg.ErrorScenarioWeight +
		m.MockIsolationScore*cfg.MockIsolationWeight +
		m.RealisticDataScore*cfg.RealisticDataWeight +
		m.DocumentationScore*cfg.DocumentationWeight +
		m.MaintenanceScore*cfg.MaintenanceWeight

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// collectTestCases flattens module-level test functions and class-level test
// methods, slicing each function's source text by its line span.
func collectTestCases(module *domain.SourceModule, content []byte) []testCase {
	lines := strings.Split(string(content), "\n")

	fns := module.TestFunctions()
	tests := make([]testCase, 0, len(fns))
	for _, fn := range fns {
		raw := functionText(lines, fn)
		tests = append(tests, testCase{
			fn:      fn,
			raw:     raw,
			lowered: strings.ToLower(raw),
		})
	}
	return tests
}

func functionText(lines []string, fn domain.FunctionSignature) string {
	start := fn.StartLine - 1
	end := fn.EndLine
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}

// percentage guards against division by zero: no test functions means 0.
func percentage(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total) * 100
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
