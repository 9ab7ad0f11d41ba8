// Package cli wires the cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "testforge",
		Short:         "Measure and improve your test suite",
		Long:          "Testforge scores the quality of a Python project's test suite and generates pytest skeletons for untested code.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newCreateUnitCmd())
	cmd.AddCommand(newCreateIntegrationCmd())
	cmd.AddCommand(newCreateE2ECmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newSurveyCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "testforge %s (%s)\n", version, commit)
		},
	}
}
