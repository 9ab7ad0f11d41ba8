package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/testforge/testforge/internal/adapters/outbound/config"
	"github.com/testforge/testforge/internal/adapters/outbound/gitinfo"
	"github.com/testforge/testforge/internal/adapters/outbound/history"
	"github.com/testforge/testforge/internal/adapters/outbound/parser"
	reportstore "github.com/testforge/testforge/internal/adapters/outbound/report"
	"github.com/testforge/testforge/internal/adapters/outbound/scanner"
	"github.com/testforge/testforge/internal/application"
)

// registerTools registers all testforge MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("testforge_analyze",
			mcplib.WithDescription("Analyze the project's test suite quality and return the full report as JSON"),
		),
		handleAnalyze(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("testforge_create_unit",
			mcplib.WithDescription("Generate a pytest unit-test skeleton for a source module"),
			mcplib.WithString("module",
				mcplib.Required(),
				mcplib.Description("Path to the source module, relative to the project root"),
			),
		),
		handleCreateUnit(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("testforge_create_integration",
			mcplib.WithDescription("Generate a placeholder integration-test suite for a set of components"),
			mcplib.WithString("components",
				mcplib.Required(),
				mcplib.Description("Comma-separated component names"),
			),
		),
		handleCreateIntegration(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("testforge_create_e2e",
			mcplib.WithDescription("Generate a placeholder end-to-end test suite for a set of workflows"),
			mcplib.WithString("workflows",
				mcplib.Required(),
				mcplib.Description("Comma-separated workflow names"),
			),
		),
		handleCreateE2E(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("testforge_validate",
			mcplib.WithDescription("Analyze the project and report whether the overall score meets a threshold"),
			mcplib.WithString("threshold",
				mcplib.Description("Minimum overall score, default 80"),
			),
		),
		handleValidate(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("testforge_survey",
			mcplib.WithDescription("Survey the project's source modules and return testing recommendations"),
		),
		handleSurvey(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("testforge_history",
			mcplib.WithDescription("Return recorded analysis runs for trend tracking"),
		),
		handleHistory(projectPath),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.AnalyzeService, *application.CreateService, *application.SurveyService) {
	sc := scanner.New()
	ext := parser.New()
	cfg := config.New()
	analyze := application.NewAnalyzeService(sc, ext, cfg, reportstore.New(), history.New(), gitinfo.New())
	create := application.NewCreateService(ext, cfg)
	survey := application.NewSurveyService(sc, ext, cfg)
	return analyze, create, survey
}

func handleAnalyze(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		analyze, _, _ := newServices()
		rep, err := analyze.AnalyzeProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(rep)
	}
}

func handleCreateUnit(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		modulePath, err := request.RequireString("module")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, create, _ := newServices()
		result, err := create.CreateUnitTests(projectPath, modulePath)
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleCreateIntegration(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		componentsStr, err := request.RequireString("components")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, create, _ := newServices()
		result, err := create.CreateIntegrationTests(projectPath, splitAndTrim(componentsStr))
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleCreateE2E(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		workflowsStr, err := request.RequireString("workflows")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, create, _ := newServices()
		result, err := create.CreateE2ETests(projectPath, splitAndTrim(workflowsStr))
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		threshold, err := strconv.ParseFloat(request.GetString("threshold", "80"), 64)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid threshold: %v", err)), nil
		}

		analyze, _, _ := newServices()
		rep, err := analyze.AnalyzeProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		return jsonResult(map[string]interface{}{
			"passed":    rep.ProjectMetrics.OverallQualityScore >= threshold,
			"score":     rep.ProjectMetrics.OverallQualityScore,
			"threshold": threshold,
			"grade":     rep.QualityGrade,
		})
	}
}

func handleSurvey(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, _, survey := newServices()
		result, err := survey.Survey(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("survey failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleHistory(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
