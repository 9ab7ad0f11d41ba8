package application_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/testforge/testforge/internal/adapters/outbound/config"
	"github.com/testforge/testforge/internal/adapters/outbound/parser"
	"github.com/testforge/testforge/internal/adapters/outbound/scanner"
	"github.com/testforge/testforge/internal/application"
)

func newSurveyService() *application.SurveyService {
	return application.NewSurveyService(scanner.New(), parser.New(), appconfig.New())
}

// pythonModule fabricates a module with the requested number of functions
// and imports.
func pythonModule(functions, imports int) string {
	var b strings.Builder
	for i := 0; i < imports; i++ {
		fmt.Fprintf(&b, "import mod%d\n", i)
	}
	for i := 0; i < functions; i++ {
		fmt.Fprintf(&b, "def handle_case_%d(value):\n    return value\n", i)
	}
	return b.String()
}

func TestSurvey_EstimatesComplexity(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "src/big.py", pythonModule(25, 0))
	writeProjectFile(t, dir, "src/medium.py", pythonModule(12, 0))
	writeProjectFile(t, dir, "src/imports.py", pythonModule(1, 16))
	writeProjectFile(t, dir, "src/small.py", pythonModule(2, 1))

	survey, err := newSurveyService().Survey(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, survey.TotalModules)

	complexity := map[string]string{}
	for _, m := range survey.Modules {
		complexity[m.Name] = m.Complexity
	}
	assert.Equal(t, "high", complexity["big"])
	assert.Equal(t, "medium", complexity["medium"])
	assert.Equal(t, "high", complexity["imports"])
	assert.Equal(t, "low", complexity["small"])
}

func TestSurvey_Recommendations(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "src/big.py", pythonModule(25, 0))
	writeProjectFile(t, dir, "src/medium.py", pythonModule(12, 0))

	survey, err := newSurveyService().Survey(dir)
	require.NoError(t, err)

	joined := strings.Join(survey.Recommendations, "\n")
	assert.Contains(t, joined, "Focus on 1 high-complexity modules first.")
	assert.Contains(t, joined, "integration tests for 1 medium-complexity")
	assert.Contains(t, joined, "37 functions and 0 classes")
}

func TestSurvey_UnparsableModuleKeptWithZeroCounts(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "src/broken.py", "def broken(:\n    pass\n")

	survey, err := newSurveyService().Survey(dir)
	require.NoError(t, err)

	require.Len(t, survey.Modules, 1)
	assert.Equal(t, "broken", survey.Modules[0].Name)
	assert.Equal(t, 0, survey.Modules[0].Functions)
	assert.Equal(t, "low", survey.Modules[0].Complexity)
}

func TestSurvey_EmptyProject(t *testing.T) {
	survey, err := newSurveyService().Survey(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0, survey.TotalModules)
	require.Len(t, survey.Recommendations, 1)
	assert.Contains(t, survey.Recommendations[0], "0 functions and 0 classes")
}
