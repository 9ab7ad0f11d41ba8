package domain

import (
	"errors"
	"time"
)

// ErrNoTestFiles signals that discovery matched nothing to analyze; no
// partial report is synthesized in that case.
var ErrNoTestFiles = errors.New("no test files found")

// QualityMetrics holds the six 0-100 sub-metrics plus the weighted overall
// score for one analyzed test file (or the project-wide aggregate).
//
// RealisticDataScore is carried in the model and the weighted formula but no
// analysis pass assigns it; it is always 0.
type QualityMetrics struct {
	BusinessLogicCoverage float64 `json:"business_logic_coverage"`
	ErrorScenarioCoverage float64 `json:"error_scenario_coverage"`
	MockIsolationScore    float64 `json:"mock_isolation_score"`
	RealisticDataScore    float64 `json:"realistic_data_score"`
	DocumentationScore    float64 `json:"documentation_score"`
	MaintenanceScore      float64 `json:"maintenance_score"`
	OverallQualityScore   float64 `json:"overall_quality_score"`
}

// FileMetrics pairs a file path with its metrics in the persisted report.
type FileMetrics struct {
	FilePath string `json:"file_path"`
	QualityMetrics
}

// Issue represents a problem found during analysis. Issues never mutate;
// analysis passes only append.
type Issue struct {
	FilePath    string `json:"file_path"`
	LineNumber  int    `json:"line_number"`
	Type        string `json:"issue_type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Issue types emitted by the quality analyzer.
const (
	IssueTestTooShort         = "test_too_short"
	IssueTestTooLong          = "test_too_long"
	IssueInsufficientAsserts  = "insufficient_assertions"
	IssueLowBusinessCoverage  = "low_business_logic_coverage"
	IssueTooManyMocks         = "too_many_mocks"
	IssueMissingDocumentation = "missing_documentation"
	IssueAnalysisError        = "analysis_error"
)

// SeverityCount buckets issue totals by severity.
type SeverityCount struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// IssueSummary aggregates per-file issues into project-wide counts.
type IssueSummary struct {
	TotalIssues     int            `json:"total_issues"`
	BySeverity      SeverityCount  `json:"by_severity"`
	ByType          map[string]int `json:"by_type"`
	FilesWithIssues int            `json:"files_with_issues"`
}

// ProjectReport is the persisted result of a whole-project analysis.
type ProjectReport struct {
	ProjectPath       string         `json:"project_path"`
	TestFilesAnalyzed int            `json:"test_files_analyzed"`
	ProjectMetrics    QualityMetrics `json:"project_metrics"`
	FileMetrics       []FileMetrics  `json:"file_metrics"`
	IssueSummary      IssueSummary   `json:"issue_summary"`
	Recommendations   []string       `json:"recommendations"`
	QualityGrade      string         `json:"quality_grade"`
	CommitHash        string         `json:"commit_hash,omitempty"`
	GeneratedAt       time.Time      `json:"generated_at,omitempty"`
}

// GradeFor maps an overall score to a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// CreationResult describes one test-generation operation for the
// presentation layer; the core never formats output itself.
type CreationResult struct {
	Type            string   `json:"type"` // "unit", "integration", "e2e"
	ModulePath      string   `json:"module_path,omitempty"`
	Components      []string `json:"components,omitempty"`
	OutputPath      string   `json:"output_path"`
	Functions       int      `json:"functions,omitempty"`
	Classes         int      `json:"classes,omitempty"`
	ValidationScore float64  `json:"validation_score,omitempty"`
	ValidationGrade string   `json:"validation_grade,omitempty"`
}

// ModuleOverview is one source module in a project survey.
type ModuleOverview struct {
	Path       string `json:"path"`
	Name       string `json:"name"`
	Functions  int    `json:"functions"`
	Classes    int    `json:"classes"`
	Complexity string `json:"complexity"` // "low", "medium", "high"
}

// SurveyReport summarizes a project's testing needs.
type SurveyReport struct {
	TotalModules    int              `json:"total_modules"`
	Modules         []ModuleOverview `json:"modules"`
	Recommendations []string         `json:"testing_recommendations"`
}

// HistoryEntry records one analysis run for trend tracking.
type HistoryEntry struct {
	Timestamp         string  `json:"timestamp"`
	CommitHash        string  `json:"commit_hash,omitempty"`
	OverallScore      float64 `json:"overall_score"`
	Grade             string  `json:"grade"`
	TestFilesAnalyzed int     `json:"test_files_analyzed"`
}
