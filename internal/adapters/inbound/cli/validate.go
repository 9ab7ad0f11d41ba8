package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/adapters/outbound/tui"
	"github.com/testforge/testforge/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate test quality against a threshold",
		Long:  "Run the full quality analysis and fail when the overall score falls below the threshold.",
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

			rep, err := newAnalyzeService().AnalyzeProject(absPath)
			if err != nil {
				if errors.Is(err, domain.ErrNoTestFiles) {
					return fmt.Errorf("no test files found in %s", absPath)
				}
				return fmt.Errorf("analysis failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rep))

			score := rep.ProjectMetrics.OverallQualityScore
			if score < threshold {
				return fmt.Errorf("quality validation failed: %.1f is below threshold %.1f", score, threshold)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Quality validation passed: %.1f >= %.1f\n", score, threshold)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 80.0, "Minimum overall score")

	return cmd
}
