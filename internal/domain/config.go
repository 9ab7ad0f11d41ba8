package domain

import "fmt"

// Default vocabularies for the heuristic passes. They live on the config so
// projects can tune them without touching the scoring logic.
var (
	DefaultBusinessLogicIndicators = []string{
		"calculate_", "compute_", "process_", "handle_", "validate_",
		"transform_", "convert_", "apply_", "execute_", "perform_",
	}

	DefaultErrorIndicators = []string{
		"raises", "exception", "error", "fail", "invalid", "malformed",
		"timeout", "network", "permission", "authentication", "authorization",
	}

	DefaultMockIndicators = []string{"mock", "patch", "magicmock", "asyncmock", "stub"}

	DefaultDocKeywords = []string{"test", "verify", "check", "ensure"}
)

// DefaultSourceRootDirs are conventional top-level source directory names
// stripped when deriving a module's import path.
var DefaultSourceRootDirs = []string{"src", "lib", "app"}

// Config is the full configuration surface, split the way the persisted
// config file is: quality thresholds for analysis, creation settings for
// generation.
type Config struct {
	Quality  QualityConfig  `yaml:"quality"  json:"quality"`
	Creation CreationConfig `yaml:"creation" json:"creation"`
}

// QualityConfig tunes the quality analyzer and aggregator.
type QualityConfig struct {
	// Coverage thresholds (percentages).
	MinCoverageThreshold      float64 `yaml:"min_coverage_threshold"       json:"min_coverage_threshold"`
	MinBusinessLogicThreshold float64 `yaml:"min_business_logic_threshold" json:"min_business_logic_threshold"`
	MinErrorScenarioThreshold float64 `yaml:"min_error_scenario_threshold" json:"min_error_scenario_threshold"`

	// Scoring weights; must sum to ~1.0.
	BusinessLogicWeight float64 `yaml:"business_logic_weight" json:"business_logic_weight"`
	ErrorScenarioWeight float64 `yaml:"error_scenario_weight" json:"error_scenario_weight"`
	MockIsolationWeight float64 `yaml:"mock_isolation_weight" json:"mock_isolation_weight"`
	RealisticDataWeight float64 `yaml:"realistic_data_weight" json:"realistic_data_weight"`
	DocumentationWeight float64 `yaml:"documentation_weight"  json:"documentation_weight"`
	MaintenanceWeight   float64 `yaml:"maintenance_weight"    json:"maintenance_weight"`

	// File discovery.
	TestFilePatterns   []string `yaml:"test_file_patterns"   json:"test_file_patterns"`
	SourceFilePatterns []string `yaml:"source_file_patterns" json:"source_file_patterns"`
	ExcludeDirs        []string `yaml:"exclude_dirs"         json:"exclude_dirs"`

	// Per-test thresholds.
	MinTestLength         int `yaml:"min_test_length"           json:"min_test_length"`
	MaxTestLength         int `yaml:"max_test_length"           json:"max_test_length"`
	MinAssertionsPerTest  int `yaml:"min_assertions_per_test"   json:"min_assertions_per_test"`
	MaxMockObjectsPerTest int `yaml:"max_mock_objects_per_test" json:"max_mock_objects_per_test"`

	// Pluggable vocabularies; empty means the defaults apply.
	BusinessLogicIndicators []string `yaml:"business_logic_indicators,omitempty" json:"business_logic_indicators,omitempty"`
	ErrorIndicators         []string `yaml:"error_indicators,omitempty"          json:"error_indicators,omitempty"`
	MockIndicators          []string `yaml:"mock_indicators,omitempty"           json:"mock_indicators,omitempty"`
	DocKeywords             []string `yaml:"doc_keywords,omitempty"              json:"doc_keywords,omitempty"`
}

// CreationConfig tunes the template generator.
type CreationConfig struct {
	OutputDirectory string `yaml:"output_directory" json:"output_directory"`
	TestFilePrefix  string `yaml:"test_file_prefix" json:"test_file_prefix"`

	IncludeErrorScenarios   bool `yaml:"include_error_scenarios"   json:"include_error_scenarios"`
	IncludeEdgeCases        bool `yaml:"include_edge_cases"        json:"include_edge_cases"`
	IncludePerformanceTests bool `yaml:"include_performance_tests" json:"include_performance_tests"`
	IncludeIntegrationTests bool `yaml:"include_integration_tests" json:"include_integration_tests"`

	MinAssertionsPerTest int  `yaml:"min_assertions_per_test" json:"min_assertions_per_test"`
	MaxTestLength        int  `yaml:"max_test_length"         json:"max_test_length"`
	IncludeDocstrings    bool `yaml:"include_docstrings"      json:"include_docstrings"`

	AutoGenerateMocks        bool `yaml:"auto_generate_mocks"        json:"auto_generate_mocks"`
	MockExternalDependencies bool `yaml:"mock_external_dependencies" json:"mock_external_dependencies"`
	MockDatabaseOperations   bool `yaml:"mock_database_operations"   json:"mock_database_operations"`

	GenerateRealisticData bool `yaml:"generate_realistic_data" json:"generate_realistic_data"`
	IncludeBoundaryValues bool `yaml:"include_boundary_values" json:"include_boundary_values"`
	IncludeNegativeCases  bool `yaml:"include_negative_cases"  json:"include_negative_cases"`

	// SourceRootDirs are stripped from module paths when deriving import
	// paths for generated files; empty means the defaults apply.
	SourceRootDirs []string `yaml:"source_root_dirs,omitempty" json:"source_root_dirs,omitempty"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Quality: QualityConfig{
			MinCoverageThreshold:      80.0,
			MinBusinessLogicThreshold: 70.0,
			MinErrorScenarioThreshold: 60.0,

			BusinessLogicWeight: 0.25,
			ErrorScenarioWeight: 0.20,
			MockIsolationWeight: 0.15,
			RealisticDataWeight: 0.15,
			DocumentationWeight: 0.15,
			MaintenanceWeight:   0.10,

			TestFilePatterns:   []string{"test_*.py", "*_test.py"},
			SourceFilePatterns: []string{"*.py"},
			ExcludeDirs: []string{
				".venv", "venv", "env", "__pycache__", "node_modules",
				".git", ".pytest_cache", "htmlcov", ".coverage",
			},

			MinTestLength:         10,
			MaxTestLength:         200,
			MinAssertionsPerTest:  1,
			MaxMockObjectsPerTest: 5,
		},
		Creation: CreationConfig{
			OutputDirectory: "tests",
			TestFilePrefix:  "test_",

			IncludeErrorScenarios:   true,
			IncludeEdgeCases:        true,
			IncludePerformanceTests: false,
			IncludeIntegrationTests: true,

			MinAssertionsPerTest: 2,
			MaxTestLength:        50,
			IncludeDocstrings:    true,

			AutoGenerateMocks:        true,
			MockExternalDependencies: true,
			MockDatabaseOperations:   true,

			GenerateRealisticData: true,
			IncludeBoundaryValues: true,
			IncludeNegativeCases:  true,
		},
	}
}

// Indicators resolve the configured vocabulary or fall back to the default.

func (q QualityConfig) BusinessIndicators() []string {
	if len(q.BusinessLogicIndicators) > 0 {
		return q.BusinessLogicIndicators
	}
	return DefaultBusinessLogicIndicators
}

func (q QualityConfig) ErrorScenarioIndicators() []string {
	if len(q.ErrorIndicators) > 0 {
		return q.ErrorIndicators
	}
	return DefaultErrorIndicators
}

func (q QualityConfig) MockUsageIndicators() []string {
	if len(q.MockIndicators) > 0 {
		return q.MockIndicators
	}
	return DefaultMockIndicators
}

func (q QualityConfig) DocstringKeywords() []string {
	if len(q.DocKeywords) > 0 {
		return q.DocKeywords
	}
	return DefaultDocKeywords
}

// WeightSum is the total of the six configured metric weights.
func (q QualityConfig) WeightSum() float64 {
	return q.BusinessLogicWeight + q.ErrorScenarioWeight + q.MockIsolationWeight +
		q.RealisticDataWeight + q.DocumentationWeight + q.MaintenanceWeight
}

// Validate checks the config for invalid values and returns a descriptive
// error for the first problem found.
func (c Config) Validate() error {
	q := c.Quality

	sum := q.WeightSum()
	if sum < 0.95 || sum > 1.05 {
		return fmt.Errorf("quality weights sum to %.2f (must be between 0.95 and 1.05)", sum)
	}

	thresholds := map[string]float64{
		"min_coverage_threshold":       q.MinCoverageThreshold,
		"min_business_logic_threshold": q.MinBusinessLogicThreshold,
		"min_error_scenario_threshold": q.MinErrorScenarioThreshold,
	}
	for name, v := range thresholds {
		if v < 0 || v > 100 {
			return fmt.Errorf("quality.%s = %.1f (must be between 0 and 100)", name, v)
		}
	}

	if q.MinTestLength < 0 {
		return fmt.Errorf("quality.min_test_length must be >= 0 (got %d)", q.MinTestLength)
	}
	if q.MaxTestLength > 0 && q.MaxTestLength < q.MinTestLength {
		return fmt.Errorf("quality.max_test_length %d is below min_test_length %d", q.MaxTestLength, q.MinTestLength)
	}
	if q.MinAssertionsPerTest < 0 {
		return fmt.Errorf("quality.min_assertions_per_test must be >= 0 (got %d)", q.MinAssertionsPerTest)
	}
	if q.MaxMockObjectsPerTest < 0 {
		return fmt.Errorf("quality.max_mock_objects_per_test must be >= 0 (got %d)", q.MaxMockObjectsPerTest)
	}
	if len(q.TestFilePatterns) == 0 {
		return fmt.Errorf("quality.test_file_patterns must not be empty")
	}
	if len(q.SourceFilePatterns) == 0 {
		return fmt.Errorf("quality.source_file_patterns must not be empty")
	}

	if c.Creation.OutputDirectory == "" {
		return fmt.Errorf("creation.output_directory must not be empty")
	}
	if c.Creation.TestFilePrefix == "" {
		return fmt.Errorf("creation.test_file_prefix must not be empty")
	}

	return nil
}

// RootDirs resolves the configured source roots or falls back to the default.
func (c CreationConfig) RootDirs() []string {
	if len(c.SourceRootDirs) > 0 {
		return c.SourceRootDirs
	}
	return DefaultSourceRootDirs
}
