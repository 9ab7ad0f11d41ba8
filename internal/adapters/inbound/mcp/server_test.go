package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/testforge/testforge/internal/adapters/inbound/mcp"
)

func TestNewTestforgeMCPServer(t *testing.T) {
	s := mcpadapter.NewTestforgeMCPServer(".")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewTestforgeMCPServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"testforge_analyze",
		"testforge_create_unit",
		"testforge_create_integration",
		"testforge_create_e2e",
		"testforge_validate",
		"testforge_survey",
		"testforge_history",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools))
}
