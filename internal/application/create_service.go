package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/testforge/testforge/internal/domain"
	"github.com/testforge/testforge/internal/domain/analysis"
	"github.com/testforge/testforge/internal/domain/generate"
)

// CreateService generates test skeletons and validates what it wrote with
// the same analyzer the analyze pipeline uses.
type CreateService struct {
	extractor    domain.ModuleExtractor
	configLoader domain.ConfigLoader
}

// NewCreateService creates a new CreateService.
func NewCreateService(extractor domain.ModuleExtractor, configLoader domain.ConfigLoader) *CreateService {
	return &CreateService{extractor: extractor, configLoader: configLoader}
}

// CreateUnitTests generates a unit-test skeleton for one source module and
// writes it under the configured output directory. The written file is then
// re-analyzed so the result carries a quality score for the skeleton itself.
func (s *CreateService) CreateUnitTests(projectPath, modulePath string) (*domain.CreationResult, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	moduleFile := filepath.Join(projectPath, modulePath)
	content, err := os.ReadFile(moduleFile)
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", modulePath, err)
	}

	module, err := s.extractor.Extract(modulePath, content)
	if err != nil {
		return nil, fmt.Errorf("extracting module %s: %w", modulePath, err)
	}
	if module.IsDegraded() {
		return nil, fmt.Errorf("module %s does not parse: %s", modulePath, module.ParseError)
	}

	testContent := generate.UnitTest(module, cfg.Creation)

	fileName := cfg.Creation.TestFilePrefix + stem(moduleFile) + ".py"
	outputPath := filepath.Join(projectPath, cfg.Creation.OutputDirectory, fileName)
	if err := writeTestFile(outputPath, testContent); err != nil {
		return nil, err
	}

	result := &domain.CreationResult{
		Type:       "unit",
		ModulePath: modulePath,
		OutputPath: outputPath,
		Functions:  len(module.PublicFunctions()),
		Classes:    len(module.PublicClasses()),
	}
	s.validateGenerated(result, outputPath, cfg.Quality)

	return result, nil
}

// CreateIntegrationTests writes a placeholder integration suite for the
// named components under <output>/integration.
func (s *CreateService) CreateIntegrationTests(projectPath string, components []string) (*domain.CreationResult, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("no components given")
	}

	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outputPath := filepath.Join(projectPath, cfg.Creation.OutputDirectory, "integration",
		generate.IntegrationFileName(components))
	if err := writeTestFile(outputPath, generate.IntegrationTest(components)); err != nil {
		return nil, err
	}

	return &domain.CreationResult{
		Type:       "integration",
		Components: components,
		OutputPath: outputPath,
	}, nil
}

// CreateE2ETests writes a placeholder end-to-end suite for the named
// workflows under <output>/e2e.
func (s *CreateService) CreateE2ETests(projectPath string, workflows []string) (*domain.CreationResult, error) {
	if len(workflows) == 0 {
		return nil, fmt.Errorf("no workflows given")
	}

	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outputPath := filepath.Join(projectPath, cfg.Creation.OutputDirectory, "e2e",
		generate.E2EFileName(workflows))
	content := generate.E2ETest(workflows, cfg.Creation.IncludePerformanceTests)
	if err := writeTestFile(outputPath, content); err != nil {
		return nil, err
	}

	return &domain.CreationResult{
		Type:       "e2e",
		Components: workflows,
		OutputPath: outputPath,
	}, nil
}

// validateGenerated scores the file just written. Validation is advisory:
// failures leave the result without a score instead of failing the creation.
func (s *CreateService) validateGenerated(result *domain.CreationResult, path string, cfg domain.QualityConfig) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}
	module, err := s.extractor.Extract(filepath.Base(path), content)
	if err != nil || module.IsDegraded() {
		return
	}

	metrics, _ := analysis.Analyze(path, module, content, cfg)
	result.ValidationScore = metrics.OverallQualityScore
	result.ValidationGrade = domain.GradeFor(metrics.OverallQualityScore)
}

func writeTestFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing test file: %w", err)
	}
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
