// Package errors provides categorized CLI errors with remediation steps.
package errors

// ErrorCategory classifies a CLI error for display.
type ErrorCategory int

const (
	// Argument indicates invalid command-line arguments.
	Argument ErrorCategory = iota
	// Configuration indicates a problem with the loaded configuration.
	Configuration
	// Prerequisite indicates a missing dependency or input file.
	Prerequisite
	// Runtime indicates a failure during export execution.
	Runtime
)

// String returns the display heading for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	// Details carries tool diagnostics shown verbatim below the message.
	Details string
}

func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates an Argument-category error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewConfigurationError creates a Configuration-category error.
func NewConfigurationError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite-category error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime-category error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}
