package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/internal/adapters/outbound/config"
	"github.com/testforge/testforge/internal/adapters/outbound/parser"
	"github.com/testforge/testforge/internal/adapters/outbound/tui"
	"github.com/testforge/testforge/internal/application"
)

func newCreateUnitCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "create-unit <module>",
		Short: "Generate a unit-test skeleton for a module",
		Long:  "Extract the structure of a Python module and write a pytest skeleton covering its public functions and classes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewCreateService(parser.New(), config.New())
			result, err := svc.CreateUnitTests(absPath, args[0])
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCreation(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "path", "p", ".", "Project root")

	return cmd
}

func newCreateIntegrationCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "create-integration <component>...",
		Short: "Generate an integration-test placeholder suite",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewCreateService(parser.New(), config.New())
			result, err := svc.CreateIntegrationTests(absPath, args)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCreation(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "path", "p", ".", "Project root")

	return cmd
}

func newCreateE2ECmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "create-e2e <workflow>...",
		Short: "Generate an end-to-end test placeholder suite",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewCreateService(parser.New(), config.New())
			result, err := svc.CreateE2ETests(absPath, args)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCreation(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectPath, "path", "p", ".", "Project root")

	return cmd
}
