package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/adapters/outbound/scanner"
	"github.com/testforge/testforge/internal/domain"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("pass\n"), 0o644))
}

func TestScan_SeparatesTestAndSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tests/test_orders.py")
	writeFile(t, dir, "tests/orders_test.py")
	writeFile(t, dir, "src/orders.py")
	writeFile(t, dir, "README.md")

	result, err := scanner.New().Scan(dir, domain.DefaultConfig().Quality)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join("tests", "test_orders.py"),
		filepath.Join("tests", "orders_test.py"),
	}, result.TestFiles)
	assert.Equal(t, []string{filepath.Join("src", "orders.py")}, result.SourceFiles)
}

func TestScan_SkipsExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".venv/lib/test_hidden.py")
	writeFile(t, dir, "__pycache__/test_cached.py")
	writeFile(t, dir, "tests/test_real.py")

	result, err := scanner.New().Scan(dir, domain.DefaultConfig().Quality)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join("tests", "test_real.py")}, result.TestFiles)
}

func TestScan_CustomPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "spec_orders.py")
	writeFile(t, dir, "test_orders.py")

	cfg := domain.DefaultConfig().Quality
	cfg.TestFilePatterns = []string{"spec_*.py"}

	result, err := scanner.New().Scan(dir, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"spec_orders.py"}, result.TestFiles)
	// test_orders.py still matches the source pattern.
	assert.Contains(t, result.SourceFiles, "test_orders.py")
}

func TestScan_InvalidPattern(t *testing.T) {
	cfg := domain.DefaultConfig().Quality
	cfg.TestFilePatterns = []string{"[broken"}

	_, err := scanner.New().Scan(t.TempDir(), cfg)
	assert.Error(t, err)
}

func TestScan_EmptyProject(t *testing.T) {
	result, err := scanner.New().Scan(t.TempDir(), domain.DefaultConfig().Quality)
	require.NoError(t, err)

	assert.Empty(t, result.TestFiles)
	assert.Empty(t, result.SourceFiles)
}
