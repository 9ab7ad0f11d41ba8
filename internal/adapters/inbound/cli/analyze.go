package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/adapters/outbound/config"
	"github.com/testforge/testforge/internal/adapters/outbound/gitinfo"
	"github.com/testforge/testforge/internal/adapters/outbound/history"
	"github.com/testforge/testforge/internal/adapters/outbound/parser"
	reportstore "github.com/testforge/testforge/internal/adapters/outbound/report"
	"github.com/testforge/testforge/internal/adapters/outbound/scanner"
	"github.com/testforge/testforge/internal/adapters/outbound/tui"
	"github.com/testforge/testforge/internal/application"
	"github.com/testforge/testforge/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput  bool
		outputFile  string
		minScore    float64
		ciMode      bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze test suite quality",
		Long:  "Score every test file in a Python project across six quality dimensions and aggregate the results into a graded report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := newAnalyzeService()

			if showHistory {
				entries, err := svc.History(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			rep, err := svc.AnalyzeProject(absPath)
			if err != nil {
				if errors.Is(err, domain.ErrNoTestFiles) {
					return fmt.Errorf("no test files found in %s", absPath)
				}
				return fmt.Errorf("analysis failed: %w", err)
			}

			if outputFile != "" {
				if err := svc.SaveReport(rep, outputFile); err != nil {
					return err
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rep))

			if ciMode && rep.ProjectMetrics.OverallQualityScore < minScore {
				return fmt.Errorf("score %.1f is below minimum %.1f",
					rep.ProjectMetrics.OverallQualityScore, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write report to a file")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum overall score for CI mode")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show analysis history")

	return cmd
}

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		scanner.New(),
		parser.New(),
		config.New(),
		reportstore.New(),
		history.New(),
		gitinfo.New(),
	)
}
