package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/testforge/testforge/internal/adapters/outbound/config"
	"github.com/testforge/testforge/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_MissingFilesReturnDefaults(t *testing.T) {
	cfg, err := appconfig.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".testforge.yaml", `
quality:
  min_business_logic_threshold: 50
  max_mock_objects_per_test: 3
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Quality.MinBusinessLogicThreshold)
	assert.Equal(t, 3, cfg.Quality.MaxMockObjectsPerTest)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.25, cfg.Quality.BusinessLogicWeight)
	assert.Equal(t, "tests", cfg.Creation.OutputDirectory)
}

func TestLoad_LegacyJSONConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".test-workflows-config.json", `{
  "quality": {"min_test_length": 5},
  "creation": {"include_performance_tests": true}
}`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Quality.MinTestLength)
	assert.True(t, cfg.Creation.IncludePerformanceTests)
}

func TestLoad_YAMLWinsOverJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".testforge.yaml", "quality:\n  min_test_length: 7\n")
	writeFile(t, dir, ".test-workflows-config.json", `{"quality": {"min_test_length": 3}}`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Quality.MinTestLength)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".testforge.yaml", "{{{invalid yaml")

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .testforge.yaml")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".testforge.yaml", "quality:\n  min_business_logic_threshold: 150\n")

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .testforge.yaml")
}

func TestWrite_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Quality.MinTestLength = 12

	require.NoError(t, appconfig.Write(dir, cfg))

	loaded, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Quality.MinTestLength)
}
