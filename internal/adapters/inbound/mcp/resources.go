package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all testforge MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"testforge://report",
			"Quality Report",
			mcplib.WithResourceDescription("Current test-quality report for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			"testforge://survey",
			"Project Survey",
			mcplib.WithResourceDescription("Source-module survey with testing recommendations"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSurveyResource(projectPath),
	)
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		analyze, _, _ := newServices()
		rep, err := analyze.AnalyzeProject(projectPath)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}
		return jsonResource("testforge://report", rep)
	}
}

func handleSurveyResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, _, survey := newServices()
		result, err := survey.Survey(projectPath)
		if err != nil {
			return nil, fmt.Errorf("survey failed: %w", err)
		}
		return jsonResource("testforge://survey", result)
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
