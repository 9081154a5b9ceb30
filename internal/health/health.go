// Package health verifies the noteport setup: the pandoc installation and
// the configured vault.
package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/noteport/noteport/internal/config"
	"github.com/noteport/noteport/internal/pandoc"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// RunChecks runs all health checks against the loaded configuration.
func RunChecks(ctx context.Context, cfg *config.Configuration) *Report {
	report := &Report{Passed: true}
	for _, check := range []CheckResult{
		CheckPandoc(ctx, cfg.PandocPath),
		CheckVault(cfg.VaultDir),
		CheckResolveDir(cfg),
	} {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}
	return report
}

// CheckPandoc verifies that pandoc can be located and probed.
func CheckPandoc(ctx context.Context, explicitPath string) CheckResult {
	cap, err := pandoc.Detect(ctx, explicitPath)
	if err != nil {
		return CheckResult{
			Name:    "Pandoc",
			Passed:  false,
			Message: err.Error(),
		}
	}
	return CheckResult{
		Name:    "Pandoc",
		Passed:  true,
		Message: fmt.Sprintf("pandoc %s at %s", cap.Version, cap.Path),
	}
}

// CheckVault verifies that the configured vault directory exists.
func CheckVault(dir string) CheckResult {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return CheckResult{
			Name:    "Vault",
			Passed:  false,
			Message: fmt.Sprintf("vault directory %s not found", dir),
		}
	}
	return CheckResult{
		Name:    "Vault",
		Passed:  true,
		Message: dir,
	}
}

// CheckResolveDir verifies the optional custom search directory, when set.
func CheckResolveDir(cfg *config.Configuration) CheckResult {
	if cfg.ResolveDir == "" {
		return CheckResult{Name: "Resolve dir", Passed: true, Message: "not configured"}
	}
	dir := cfg.ResolveDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.VaultDir, dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return CheckResult{
			Name:    "Resolve dir",
			Passed:  false,
			Message: fmt.Sprintf("resolve directory %s not found", dir),
		}
	}
	return CheckResult{Name: "Resolve dir", Passed: true, Message: dir}
}

// FormatReport renders the report for terminal display.
func FormatReport(report *Report) string {
	var sb strings.Builder
	for _, check := range report.Checks {
		mark := color.GreenString("✓")
		if !check.Passed {
			mark = color.RedString("✗")
		}
		fmt.Fprintf(&sb, "%s %s: %s\n", mark, check.Name, check.Message)
	}
	if !report.Passed {
		sb.WriteString("\nSome checks failed. Run 'noteport doctor' again after fixing them.\n")
	}
	return sb.String()
}
