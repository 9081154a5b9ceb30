package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/noteport/noteport/internal/config"
	clierrors "github.com/noteport/noteport/internal/errors"
	"github.com/noteport/noteport/internal/export"
	"github.com/noteport/noteport/internal/pandoc"
	"github.com/noteport/noteport/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export <note.md>",
	Short: "Export one note through pandoc",
	Long: `Export a markdown note from the vault into the requested artifact.

The export will:
- Inline embedded notes recursively, replacing cyclic embeds with links
- Rewrite internal links for the target output kind
- Compile pandoc- prefixed frontmatter fields into pandoc options
- Invoke pandoc with defaults first, per-note directives after`,
	Example: `  # Export to PDF next to the note
  noteport export "Weekly Plan.md" --output "Weekly Plan.pdf"

  # Export to HTML with a custom vault
  noteport export notes/Report.md -o out/Report.html --vault ~/vault`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if len(args) == 0 {
			cliErr := clierrors.MissingNoteArgument()
			clierrors.PrintError(cliErr)
			return NewExitError(ExitInvalidArguments)
		}
		notePath := args[0]

		configPath, _ := cmd.Flags().GetString("config")
		outputPath, _ := cmd.Flags().GetString("output")
		vaultFlag, _ := cmd.Flags().GetString("vault")
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg, err := config.Load(configPath)
		if err != nil {
			cliErr := clierrors.ConfigParseError(configPath, err)
			clierrors.PrintError(cliErr)
			return NewExitError(ExitInvalidArguments)
		}
		if vaultFlag != "" {
			cfg.VaultDir = vaultFlag
		}

		if info, err := os.Stat(cfg.VaultDir); err != nil || !info.IsDir() {
			clierrors.PrintError(clierrors.VaultNotFound(cfg.VaultDir))
			return NewExitError(ExitInvalidArguments)
		}
		notePath, cliErr := locateNote(notePath, cfg.VaultDir)
		if cliErr != nil {
			clierrors.PrintError(cliErr)
			return NewExitError(ExitInvalidArguments)
		}
		if outputPath == "" {
			outputPath = strings.TrimSuffix(notePath, filepath.Ext(notePath)) + ".pdf"
		}

		cap, err := pandoc.Detect(cmd.Context(), cfg.PandocPath)
		if err != nil {
			clierrors.PrintError(clierrors.PandocNotFound(err))
			return NewExitError(ExitMissingDependencies)
		}

		exporter := export.New(cfg, cap)
		if verbose {
			exporter.Logf = func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, format+"\n", args...)
			}
		}

		var display *progress.Display
		if cfg.ShowProgress {
			display = progress.NewDisplay(progress.DetectTerminalCapabilities())
			display.StartStage(progress.StageInfo{Name: "export", Number: 1, TotalStages: 1})
		}

		report, err := exporter.Export(cmd.Context(), notePath, outputPath)
		if display != nil {
			if err != nil {
				display.FailStage()
			} else {
				display.CompleteStage()
			}
		}

		if report != nil {
			for _, d := range report.Diagnostics {
				fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("directive dropped:"), d)
			}
		}
		if err != nil {
			diagnostics := ""
			var runErr *pandoc.RunError
			if errors.As(err, &runErr) {
				diagnostics = runErr.Diagnostics
			}
			clierrors.PrintError(clierrors.ExportFailed(err, diagnostics))
			return NewExitError(ExitExportFailed)
		}

		if report.Warnings != "" {
			fmt.Fprintf(os.Stderr, "%s\n%s", color.YellowString("pandoc warnings:"), report.Warnings)
		}
		fmt.Printf("Exported %s\n", report.OutputPath)
		return nil
	},
}

// locateNote accepts a note path relative to the working directory or to the
// vault root.
func locateNote(notePath, vaultDir string) (string, *clierrors.CLIError) {
	if _, err := os.Stat(notePath); err == nil {
		abs, err := filepath.Abs(notePath)
		if err != nil {
			return "", clierrors.NoteNotFound(notePath)
		}
		return abs, nil
	}
	inVault := filepath.Join(vaultDir, notePath)
	if _, err := os.Stat(inVault); err == nil {
		abs, err := filepath.Abs(inVault)
		if err != nil {
			return "", clierrors.NoteNotFound(notePath)
		}
		return abs, nil
	}
	return "", clierrors.NoteNotFound(notePath)
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "path of the artifact to produce (default: note path with .pdf)")
	exportCmd.Flags().String("vault", "", "vault root (overrides vault_dir from config)")
	exportCmd.Flags().Bool("verbose", false, "log recoverable resolution failures")
	rootCmd.AddCommand(exportCmd)
}
