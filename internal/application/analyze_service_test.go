package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/testforge/testforge/internal/adapters/outbound/config"
	"github.com/testforge/testforge/internal/adapters/outbound/gitinfo"
	"github.com/testforge/testforge/internal/adapters/outbound/history"
	"github.com/testforge/testforge/internal/adapters/outbound/parser"
	reportstore "github.com/testforge/testforge/internal/adapters/outbound/report"
	"github.com/testforge/testforge/internal/adapters/outbound/scanner"
	"github.com/testforge/testforge/internal/application"
	"github.com/testforge/testforge/internal/domain"
)

const goodTestFile = `import pytest

def test_calculate_total_applies_discount():
    """Verify the discount is applied to the order total."""
    items = [10.0, 20.0]
    total = calculate_total(items, discount=0.5)
    base = sum(items)
    expected = base * 0.5
    remainder = base - expected
    assert total == expected
    assert remainder == expected
    with pytest.raises(ValueError):
        calculate_total(None)
`

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		scanner.New(), parser.New(), appconfig.New(),
		reportstore.New(), history.New(), gitinfo.New(),
	)
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAnalyzeProject_ProducesGradedReport(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "tests/test_orders.py", goodTestFile)

	rep, err := newAnalyzeService().AnalyzeProject(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.TestFilesAnalyzed)
	require.Len(t, rep.FileMetrics, 1)
	assert.Equal(t, 100.0, rep.FileMetrics[0].BusinessLogicCoverage)
	assert.Equal(t, 100.0, rep.FileMetrics[0].ErrorScenarioCoverage)
	assert.Equal(t, 100.0, rep.FileMetrics[0].DocumentationScore)
	assert.NotEmpty(t, rep.QualityGrade)
	assert.False(t, rep.GeneratedAt.IsZero())
}

func TestAnalyzeProject_NoTestFiles(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "src/orders.py", "def calculate_total(items):\n    return sum(items)\n")

	_, err := newAnalyzeService().AnalyzeProject(dir)
	assert.ErrorIs(t, err, domain.ErrNoTestFiles)
}

func TestAnalyzeProject_UnparsableFileDoesNotHaltRun(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "tests/test_broken.py", "def test_broken(:\n    pass\n")
	writeProjectFile(t, dir, "tests/test_orders.py", goodTestFile)

	rep, err := newAnalyzeService().AnalyzeProject(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.TestFilesAnalyzed)
	assert.Equal(t, 1, rep.IssueSummary.ByType[domain.IssueAnalysisError])

	for _, fm := range rep.FileMetrics {
		if filepath.Base(fm.FilePath) == "test_broken.py" {
			assert.Zero(t, fm.OverallQualityScore)
		}
	}
	// The analysis_error issue carries high severity.
	assert.GreaterOrEqual(t, rep.IssueSummary.BySeverity.High, 1)
}

func TestAnalyzeProject_SameStemFilesKeptDistinct(t *testing.T) {
	weak := "def test_helper():\n    assert do_it()\n"

	dir := t.TempDir()
	writeProjectFile(t, dir, "tests/unit/test_utils.py", weak)
	writeProjectFile(t, dir, "tests/api/test_utils.py", weak)

	rep, err := newAnalyzeService().AnalyzeProject(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.IssueSummary.FilesWithIssues)

	metricPaths := map[string]bool{}
	for _, fm := range rep.FileMetrics {
		metricPaths[fm.FilePath] = true
	}
	assert.True(t, metricPaths[filepath.Join("tests", "unit", "test_utils.py")])
	assert.True(t, metricPaths[filepath.Join("tests", "api", "test_utils.py")])
}

func TestSaveReport_PersistsAndRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "tests/test_orders.py", goodTestFile)

	svc := newAnalyzeService()
	rep, err := svc.AnalyzeProject(dir)
	require.NoError(t, err)

	reportPath := filepath.Join(dir, "quality-report.json")
	require.NoError(t, svc.SaveReport(rep, reportPath))

	loaded, err := svc.LoadReport(reportPath)
	require.NoError(t, err)
	assert.Equal(t, rep.ProjectMetrics, loaded.ProjectMetrics)

	entries, err := svc.History(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, rep.ProjectMetrics.OverallQualityScore, entries[0].OverallScore)
	assert.Equal(t, 1, entries[0].TestFilesAnalyzed)
}

func TestAnalyzeProject_RespectsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, ".testforge.yaml", "quality:\n  test_file_patterns:\n    - check_*.py\n")
	writeProjectFile(t, dir, "checks/check_orders.py", goodTestFile)

	rep, err := newAnalyzeService().AnalyzeProject(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.TestFilesAnalyzed)
}
