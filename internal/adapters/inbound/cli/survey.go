package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/adapters/outbound/config"
	"github.com/testforge/testforge/internal/adapters/outbound/parser"
	"github.com/testforge/testforge/internal/adapters/outbound/scanner"
	"github.com/testforge/testforge/internal/adapters/outbound/tui"
	"github.com/testforge/testforge/internal/application"
)

func newSurveyCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "survey [path]",
		Short: "Survey source modules for testing needs",
		Long:  "Inventory every source module, estimate its complexity, and recommend where to invest testing effort.",
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

			svc := application.NewSurveyService(scanner.New(), parser.New(), config.New())
			result, err := svc.Survey(absPath)
			if err != nil {
				return fmt.Errorf("survey failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSurvey(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output survey as JSON")

	return cmd
}
