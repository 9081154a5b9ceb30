package cli

import "fmt"

// Exit codes for the noteport CLI. These codes support programmatic
// composition and CI integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0
	// ExitExportFailed indicates pandoc failed to produce the artifact.
	ExitExportFailed = 1
	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 2
	// ExitMissingDependencies indicates pandoc or another input is missing.
	ExitMissingDependencies = 3
)

// ExitError carries an exit code through cobra's error return.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode returns the exit code for an error: 0 for nil, the embedded code
// for an ExitError, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	return ExitExportFailed
}
