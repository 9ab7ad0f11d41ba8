package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/domain"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.Quality.WeightSum(), 0.0001)
}

func TestQualityConfig_WeightSumOutOfRange(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Quality.BusinessLogicWeight = 0.9

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestQualityConfig_ThresholdBounds(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Quality.MinBusinessLogicThreshold = 120

	assert.Error(t, cfg.Validate())
}

func TestQualityConfig_VocabularyFallbacks(t *testing.T) {
	var cfg domain.QualityConfig

	assert.Equal(t, domain.DefaultBusinessLogicIndicators, cfg.BusinessIndicators())
	assert.Equal(t, domain.DefaultErrorIndicators, cfg.ErrorScenarioIndicators())
	assert.Equal(t, domain.DefaultMockIndicators, cfg.MockUsageIndicators())
	assert.Equal(t, domain.DefaultDocKeywords, cfg.DocstringKeywords())

	cfg.BusinessLogicIndicators = []string{"bill_", "charge_"}
	assert.Equal(t, []string{"bill_", "charge_"}, cfg.BusinessIndicators())
}

func TestCreationConfig_RootDirFallback(t *testing.T) {
	var cfg domain.CreationConfig
	assert.Equal(t, domain.DefaultSourceRootDirs, cfg.RootDirs())

	cfg.SourceRootDirs = []string{"pkg"}
	assert.Equal(t, []string{"pkg"}, cfg.RootDirs())
}

func TestDefaultConfig_DiscoveryDefaults(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, []string{"test_*.py", "*_test.py"}, cfg.Quality.TestFilePatterns)
	assert.Contains(t, cfg.Quality.ExcludeDirs, "__pycache__")
	assert.Contains(t, cfg.Quality.ExcludeDirs, ".venv")
	assert.Equal(t, "test_", cfg.Creation.TestFilePrefix)
}
