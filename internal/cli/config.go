package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noteport/noteport/internal/config"
	clierrors "github.com/noteport/noteport/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after merging defaults, the global config,
the local config, and NOTEPORT_ environment overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			clierrors.PrintError(clierrors.ConfigParseError(configPath, err))
			return NewExitError(ExitInvalidArguments)
		}

		fmt.Printf("pandoc_path:    %s\n", orUnset(cfg.PandocPath))
		fmt.Printf("vault_dir:      %s\n", cfg.VaultDir)
		fmt.Printf("resolve_dir:    %s\n", orUnset(cfg.ResolveDir))
		fmt.Printf("extra_args:     %s\n", orUnset(strings.Join(cfg.ExtraArgs, " ")))
		fmt.Printf("link_policy:    %s\n", cfg.LinkPolicy)
		fmt.Printf("link_extension: %s\n", cfg.LinkExtension)
		fmt.Printf("timeout:        %d\n", cfg.Timeout)
		fmt.Printf("raster_scale:   %g\n", cfg.RasterScale)
		fmt.Printf("show_progress:  %t\n", cfg.ShowProgress)
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
}
