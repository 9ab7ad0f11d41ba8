package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/testforge/testforge/internal/domain"
)

// Complexity boundaries for the module survey.
const (
	highComplexityMembers = 20
	highComplexityImports = 15
	medComplexityMembers  = 10
	medComplexityImports  = 8
)

// SurveyService sizes up a project's source modules to suggest where tests
// are needed most.
type SurveyService struct {
	scanner      domain.ProjectScanner
	extractor    domain.ModuleExtractor
	configLoader domain.ConfigLoader
}

// NewSurveyService creates a new SurveyService.
func NewSurveyService(scanner domain.ProjectScanner, extractor domain.ModuleExtractor, configLoader domain.ConfigLoader) *SurveyService {
	return &SurveyService{scanner: scanner, extractor: extractor, configLoader: configLoader}
}

// Survey extracts every discovered source module, estimates its complexity,
// and derives testing recommendations. Modules that fail to parse are
// surveyed with zero counts rather than skipped.
func (s *SurveyService) Survey(projectPath string) (*domain.SurveyReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg.Quality)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := &domain.SurveyReport{TotalModules: len(scan.SourceFiles)}
	for _, rel := range scan.SourceFiles {
		overview := s.surveyModule(scan.RootPath, rel)
		report.Modules = append(report.Modules, overview)
	}
	report.Recommendations = testingRecommendations(report.Modules)

	return report, nil
}

func (s *SurveyService) surveyModule(rootPath, rel string) domain.ModuleOverview {
	overview := domain.ModuleOverview{
		Path:       rel,
		Name:       stem(rel),
		Complexity: "low",
	}

	content, err := os.ReadFile(filepath.Join(rootPath, rel))
	if err != nil {
		return overview
	}
	module, err := s.extractor.Extract(rel, content)
	if err != nil || module.IsDegraded() {
		return overview
	}

	overview.Functions = len(module.Functions)
	overview.Classes = len(module.Classes)
	overview.Complexity = estimateComplexity(module)

	return overview
}

func estimateComplexity(module *domain.SourceModule) string {
	members := len(module.Functions) + len(module.Classes)
	imports := len(module.Imports)

	switch {
	case members > highComplexityMembers || imports > highComplexityImports:
		return "high"
	case members > medComplexityMembers || imports > medComplexityImports:
		return "medium"
	default:
		return "low"
	}
}

func testingRecommendations(modules []domain.ModuleOverview) []string {
	var high, medium, totalFunctions, totalClasses int
	for _, m := range modules {
		switch m.Complexity {
		case "high":
			high++
		case "medium":
			medium++
		}
		totalFunctions += m.Functions
		totalClasses += m.Classes
	}

	var recs []string
	if high > 0 {
		recs = append(recs, fmt.Sprintf(
			"Focus on %d high-complexity modules first. "+
				"These likely contain critical business logic that needs comprehensive testing.", high))
	}
	if medium > 0 {
		recs = append(recs, fmt.Sprintf(
			"Create integration tests for %d medium-complexity modules "+
				"to verify component interactions.", medium))
	}
	recs = append(recs, fmt.Sprintf(
		"Generate unit tests for %d functions and %d classes "+
			"to ensure comprehensive code coverage.", totalFunctions, totalClasses))

	return recs
}
