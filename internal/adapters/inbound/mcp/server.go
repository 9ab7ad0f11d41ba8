// Package mcp exposes testforge over the Model Context Protocol so coding
// assistants can query test quality and generate skeletons directly.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTestforgeMCPServer creates an MCP server with all testforge tools and
// resources registered. projectPath is the root of the project to analyze.
func NewTestforgeMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"testforge",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
