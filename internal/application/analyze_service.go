// Package application wires the domain core to the outbound adapters. The
// services here orchestrate; scoring, aggregation, and generation live in
// the domain packages.
package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/testforge/testforge/internal/domain"
	"github.com/testforge/testforge/internal/domain/analysis"
	"github.com/testforge/testforge/internal/domain/report"
)

// AnalyzeService runs the whole-project test-quality pipeline.
type AnalyzeService struct {
	scanner      domain.ProjectScanner
	extractor    domain.ModuleExtractor
	configLoader domain.ConfigLoader
	store        domain.ReportStore
	history      domain.ReportHistory
	git          domain.GitInfo
}

// NewAnalyzeService creates a new AnalyzeService with all required dependencies.
func NewAnalyzeService(
	scanner domain.ProjectScanner,
	extractor domain.ModuleExtractor,
	configLoader domain.ConfigLoader,
	store domain.ReportStore,
	history domain.ReportHistory,
	git domain.GitInfo,
) *AnalyzeService {
	return &AnalyzeService{
		scanner: scanner, extractor: extractor, configLoader: configLoader,
		store: store, history: history, git: git,
	}
}

// AnalyzeProject analyzes every discovered test file and aggregates the
// results into a project report. A file that cannot be read or parsed
// contributes an analysis_error issue and zero metrics; it never aborts the
// run. No test files at all is the one fatal discovery outcome.
func (s *AnalyzeService) AnalyzeProject(projectPath string) (*domain.ProjectReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg.Quality)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	if len(scan.TestFiles) == 0 {
		return nil, domain.ErrNoTestFiles
	}

	var (
		fileMetrics []domain.FileMetrics
		allIssues   []domain.Issue
	)
	for _, rel := range scan.TestFiles {
		metrics, issues := s.analyzeFile(scan.RootPath, rel, cfg.Quality)
		fileMetrics = append(fileMetrics, domain.FileMetrics{FilePath: rel, QualityMetrics: metrics})
		allIssues = append(allIssues, issues...)
	}

	summary := report.Summarize(allIssues)
	projectMetrics := report.AggregateMetrics(fileMetrics)

	rep := &domain.ProjectReport{
		ProjectPath:       projectPath,
		TestFilesAnalyzed: len(fileMetrics),
		ProjectMetrics:    projectMetrics,
		FileMetrics:       fileMetrics,
		IssueSummary:      summary,
		Recommendations:   report.Recommend(projectMetrics, summary, cfg.Quality),
		QualityGrade:      domain.GradeFor(projectMetrics.OverallQualityScore),
		GeneratedAt:       time.Now().UTC(),
	}

	if s.git != nil && s.git.IsRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			rep.CommitHash = hash
		}
	}

	return rep, nil
}

// analyzeFile scores one test file. Read and parse failures degrade to an
// analysis_error issue with zeroed metrics.
func (s *AnalyzeService) analyzeFile(rootPath, rel string, cfg domain.QualityConfig) (domain.QualityMetrics, []domain.Issue) {
	content, err := os.ReadFile(filepath.Join(rootPath, rel))
	if err != nil {
		return domain.QualityMetrics{}, []domain.Issue{analysisErrorIssue(rel, err.Error())}
	}

	module, err := s.extractor.Extract(rel, content)
	if err != nil {
		return domain.QualityMetrics{}, []domain.Issue{analysisErrorIssue(rel, err.Error())}
	}
	if module.IsDegraded() {
		return domain.QualityMetrics{}, []domain.Issue{analysisErrorIssue(rel, module.ParseError)}
	}

	return analysis.Analyze(rel, module, content, cfg)
}

func analysisErrorIssue(path, cause string) domain.Issue {
	return domain.Issue{
		FilePath:    path,
		LineNumber:  1,
		Type:        domain.IssueAnalysisError,
		Severity:    domain.SeverityHigh,
		Description: fmt.Sprintf("Failed to analyze file: %s", cause),
		Suggestion:  "Check file syntax and structure",
	}
}

// SaveReport persists a report and records a history entry. A failed write
// is fatal for the save; the history append is best-effort.
func (s *AnalyzeService) SaveReport(rep *domain.ProjectReport, path string) error {
	if err := s.store.Save(rep, path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	if s.history != nil {
		_ = s.history.Append(rep.ProjectPath, domain.HistoryEntry{
			Timestamp:         rep.GeneratedAt.Format(time.RFC3339),
			CommitHash:        rep.CommitHash,
			OverallScore:      rep.ProjectMetrics.OverallQualityScore,
			Grade:             rep.QualityGrade,
			TestFilesAnalyzed: rep.TestFilesAnalyzed,
		})
	}

	return nil
}

// LoadReport reads a previously saved report.
func (s *AnalyzeService) LoadReport(path string) (*domain.ProjectReport, error) {
	return s.store.Load(path)
}

// History returns the recorded analysis runs for a project, oldest first.
func (s *AnalyzeService) History(projectPath string) ([]domain.HistoryEntry, error) {
	return s.history.Load(projectPath)
}
