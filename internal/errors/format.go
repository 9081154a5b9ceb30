package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError for terminal display with colors.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	heading := color.New(color.FgRed, color.Bold)
	sb.WriteString(heading.Sprintf("%s:", err.Category))
	sb.WriteString(" ")
	sb.WriteString(err.Message)
	sb.WriteString("\n")

	if err.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(err.Details)
		if !strings.HasSuffix(err.Details, "\n") {
			sb.WriteString("\n")
		}
	}
	if err.Usage != "" {
		sb.WriteString("\n")
		sb.WriteString(color.CyanString("Usage:"))
		sb.WriteString(" ")
		sb.WriteString(err.Usage)
		sb.WriteString("\n")
	}
	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		sb.WriteString(color.YellowString("To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			sb.WriteString(fmt.Sprintf("  - %s\n", step))
		}
	}
	return sb.String()
}

// FormatErrorPlain renders a CLIError without ANSI escape codes.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", err.Category, err.Message)
	if err.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(err.Details)
		if !strings.HasSuffix(err.Details, "\n") {
			sb.WriteString("\n")
		}
	}
	if err.Usage != "" {
		fmt.Fprintf(&sb, "\nUsage: %s\n", err.Usage)
	}
	if len(err.Remediation) > 0 {
		sb.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  - %s\n", step)
		}
	}
	return sb.String()
}

// PrintError writes the formatted error to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
