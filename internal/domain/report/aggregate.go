// Package report aggregates per-file analysis results into the project-wide
// summary, recommendations, and grade.
package report

import (
	"github.com/testforge/testforge/internal/domain"
)

// Summarize collects issues into totals by severity and type plus the count
// of distinct files carrying at least one issue.
func Summarize(issues []domain.Issue) domain.IssueSummary {
	summary := domain.IssueSummary{
		TotalIssues: len(issues),
		ByType:      make(map[string]int),
	}

	files := make(map[string]struct{})
	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityCritical:
			summary.BySeverity.Critical++
		case domain.SeverityHigh:
			summary.BySeverity.High++
		case domain.SeverityMedium:
			summary.BySeverity.Medium++
		case domain.SeverityLow:
			summary.BySeverity.Low++
		}
		summary.ByType[issue.Type]++
		files[issue.FilePath] = struct{}{}
	}
	summary.FilesWithIssues = len(files)

	return summary
}

// AggregateMetrics averages per-file metrics into one project-wide instance.
// The mean is arithmetic and unweighted: every file counts the same
// regardless of size or test count.
func AggregateMetrics(files []domain.FileMetrics) domain.QualityMetrics {
	if len(files) == 0 {
		return domain.QualityMetrics{}
	}

	var totals domain.QualityMetrics
	for _, f := range files {
		totals.BusinessLogicCoverage += f.BusinessLogicCoverage
		totals.ErrorScenarioCoverage += f.ErrorScenarioCoverage
		totals.MockIsolationScore += f.MockIsolationScore
		totals.RealisticDataScore += f.RealisticDataScore
		totals.DocumentationScore += f.DocumentationScore
		totals.MaintenanceScore += f.MaintenanceScore
		totals.OverallQualityScore += f.OverallQualityScore
	}

	n := float64(len(files))
	return domain.QualityMetrics{
		BusinessLogicCoverage: totals.BusinessLogicCoverage / n,
		ErrorScenarioCoverage: totals.ErrorScenarioCoverage / n,
		MockIsolationScore:    totals.MockIsolationScore / n,
		RealisticDataScore:    totals.RealisticDataScore / n,
		DocumentationScore:    totals.DocumentationScore / n,
		MaintenanceScore:      totals.MaintenanceScore / n,
		OverallQualityScore:   totals.OverallQualityScore / n,
	}
}
