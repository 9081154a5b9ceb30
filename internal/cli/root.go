// Package cli wires the noteport commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "noteport",
	Short: "Export markdown notes through pandoc",
	Long: `noteport compiles a markdown note from your vault into a pandoc
invocation: embedded notes are inlined, internal links rewritten, and
pandoc- prefixed frontmatter fields become validated command-line options.`,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a local config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
