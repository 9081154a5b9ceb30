package errors

import "fmt"

// MissingNoteArgument reports an export invoked without a note path.
func MissingNoteArgument() *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  "no note specified",
		Usage:    "noteport export <note.md> [--output <artifact>]",
		Remediation: []string{
			"pass the path of the note to export",
			"run 'noteport export --help' for the full flag list",
		},
	}
}

// NoteNotFound reports a note path that does not exist.
func NoteNotFound(path string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("note not found: %s", path),
		Remediation: []string{
			"check the path for typos",
			"paths are resolved relative to the current directory, not the vault",
		},
	}
}

// VaultNotFound reports a configured vault directory that does not exist.
func VaultNotFound(dir string) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("vault directory not found: %s", dir),
		Remediation: []string{
			"set vault_dir in the config file",
			"or pass --vault pointing at your notes root",
		},
	}
}

// ConfigParseError reports an unloadable configuration.
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to load configuration: %v", err),
		Remediation: []string{
			fmt.Sprintf("check %s for JSON syntax errors", displayPath(path)),
			"run 'noteport doctor' to verify the setup",
		},
	}
}

// PandocNotFound reports a missing pandoc installation.
func PandocNotFound(err error) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("pandoc is not available: %v", err),
		Remediation: []string{
			"install pandoc from https://pandoc.org/installing.html",
			"or set pandoc_path in the config file if it lives outside PATH",
		},
	}
}

// ExportFailed wraps a failed pandoc invocation, carrying its diagnostics.
func ExportFailed(err error, diagnostics string) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("export failed: %v", err),
		Details:  diagnostics,
		Remediation: []string{
			"check the pandoc diagnostics above",
			"re-run with --verbose for the full argument vector",
		},
	}
}

func displayPath(path string) string {
	if path == "" {
		return "~/.noteport/config.json"
	}
	return path
}
