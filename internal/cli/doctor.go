package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noteport/noteport/internal/config"
	clierrors "github.com/noteport/noteport/internal/errors"
	"github.com/noteport/noteport/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks for the noteport setup",
	Long: `Run health checks to verify that everything an export needs is in place.

This command checks:
  - The pandoc binary (PATH or pandoc_path) and its version
  - The configured vault directory
  - The optional resolve_dir search directory

Each check displays a ✓ if passed or ✗ with an error message if failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			clierrors.PrintError(clierrors.ConfigParseError(configPath, err))
			return NewExitError(ExitInvalidArguments)
		}

		report := health.RunChecks(cmd.Context(), cfg)
		fmt.Print(health.FormatReport(report))

		if !report.Passed {
			os.Exit(ExitMissingDependencies)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
