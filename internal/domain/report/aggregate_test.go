package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/testforge/testforge/internal/domain"
	"github.com/testforge/testforge/internal/domain/report"
)

func TestSummarize_CountsBySeverityAndType(t *testing.T) {
	issues := []domain.Issue{
		{FilePath: "tests/test_a.py", Type: domain.IssueTestTooShort, Severity: domain.SeverityMedium},
		{FilePath: "tests/test_a.py", Type: domain.IssueInsufficientAsserts, Severity: domain.SeverityMedium},
		{FilePath: "tests/test_b.py", Type: domain.IssueLowBusinessCoverage, Severity: domain.SeverityHigh},
		{FilePath: "tests/test_b.py", Type: domain.IssueMissingDocumentation, Severity: domain.SeverityLow},
		{FilePath: "tests/test_c.py", Type: domain.IssueAnalysisError, Severity: domain.SeverityHigh},
	}

	summary := report.Summarize(issues)

	assert.Equal(t, 5, summary.TotalIssues)
	assert.Equal(t, 0, summary.BySeverity.Critical)
	assert.Equal(t, 2, summary.BySeverity.High)
	assert.Equal(t, 2, summary.BySeverity.Medium)
	assert.Equal(t, 1, summary.BySeverity.Low)
	assert.Equal(t, 3, summary.FilesWithIssues)
	assert.Equal(t, 1, summary.ByType[domain.IssueTestTooShort])
	assert.Equal(t, 1, summary.ByType[domain.IssueAnalysisError])
}

func TestSummarize_Empty(t *testing.T) {
	summary := report.Summarize(nil)

	assert.Equal(t, 0, summary.TotalIssues)
	assert.Equal(t, 0, summary.FilesWithIssues)
	assert.Empty(t, summary.ByType)
}

func TestAggregateMetrics_UnweightedMean(t *testing.T) {
	files := []domain.FileMetrics{
		{FilePath: "tests/test_good.py", QualityMetrics: domain.QualityMetrics{OverallQualityScore: 95}},
		{FilePath: "tests/test_weak.py", QualityMetrics: domain.QualityMetrics{OverallQualityScore: 65}},
	}

	aggregate := report.AggregateMetrics(files)

	assert.Equal(t, 80.0, aggregate.OverallQualityScore)
	assert.Equal(t, "B", domain.GradeFor(aggregate.OverallQualityScore))
}

func TestAggregateMetrics_AveragesEveryField(t *testing.T) {
	files := []domain.FileMetrics{
		{QualityMetrics: domain.QualityMetrics{
			BusinessLogicCoverage: 100, ErrorScenarioCoverage: 50, MockIsolationScore: 80,
			DocumentationScore: 40, MaintenanceScore: 60, OverallQualityScore: 70,
		}},
		{QualityMetrics: domain.QualityMetrics{
			BusinessLogicCoverage: 0, ErrorScenarioCoverage: 50, MockIsolationScore: 20,
			DocumentationScore: 60, MaintenanceScore: 40, OverallQualityScore: 30,
		}},
	}

	aggregate := report.AggregateMetrics(files)

	assert.Equal(t, 50.0, aggregate.BusinessLogicCoverage)
	assert.Equal(t, 50.0, aggregate.ErrorScenarioCoverage)
	assert.Equal(t, 50.0, aggregate.MockIsolationScore)
	assert.Equal(t, 0.0, aggregate.RealisticDataScore)
	assert.Equal(t, 50.0, aggregate.DocumentationScore)
	assert.Equal(t, 50.0, aggregate.MaintenanceScore)
	assert.Equal(t, 50.0, aggregate.OverallQualityScore)
}

func TestAggregateMetrics_NoFiles(t *testing.T) {
	assert.Equal(t, domain.QualityMetrics{}, report.AggregateMetrics(nil))
}

func TestRecommend_TriggersPerMetric(t *testing.T) {
	cfg := domain.DefaultConfig().Quality
	metrics := domain.QualityMetrics{
		BusinessLogicCoverage: 30.0,
		ErrorScenarioCoverage: 20.0,
		MockIsolationScore:    50.0,
		DocumentationScore:    40.0,
	}
	summary := domain.IssueSummary{BySeverity: domain.SeverityCount{High: 3, Critical: 1}}

	recs := report.Recommend(metrics, summary, cfg)

	assert.Len(t, recs, 5)
	assert.Contains(t, recs[0], "30.0%")
	assert.Contains(t, recs[1], "20.0%")
	assert.Contains(t, recs[4], "3 high and 1 critical")
}

func TestRecommend_HealthyProject(t *testing.T) {
	cfg := domain.DefaultConfig().Quality
	metrics := domain.QualityMetrics{
		BusinessLogicCoverage: 90,
		ErrorScenarioCoverage: 80,
		MockIsolationScore:    85,
		DocumentationScore:    90,
	}

	recs := report.Recommend(metrics, domain.IssueSummary{}, cfg)
	assert.Empty(t, recs)
}
