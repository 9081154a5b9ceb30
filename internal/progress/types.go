// Package progress provides progress display for export execution: stage
// status tracking, terminal capability detection, and spinner output.
package progress

import apperrors "github.com/noteport/noteport/internal/errors"

// StageStatus represents the execution state of an export stage.
type StageStatus int

const (
	// StagePending indicates the stage has not started yet.
	StagePending StageStatus = iota
	// StageInProgress indicates the stage is currently running.
	StageInProgress
	// StageCompleted indicates the stage finished successfully.
	StageCompleted
	// StageFailed indicates the stage failed with an error.
	StageFailed
)

// String returns the string representation of StageStatus.
func (s StageStatus) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageInProgress:
		return "in_progress"
	case StageCompleted:
		return "completed"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageInfo describes one export stage ("resolve", "compile", "convert")
// for progress display.
type StageInfo struct {
	// Name is the human-readable stage name.
	Name string
	// Number is the current stage number (1-based index).
	Number int
	// TotalStages is the total number of stages in the export.
	TotalStages int
	// Status is the current execution status.
	Status StageStatus
}

// Validate checks that all StageInfo fields meet display requirements.
func (p StageInfo) Validate() error {
	if p.Name == "" {
		return apperrors.NewArgumentError("stage name cannot be empty")
	}
	if p.Number <= 0 {
		return apperrors.NewArgumentError("stage number must be > 0")
	}
	if p.TotalStages <= 0 {
		return apperrors.NewArgumentError("total stages must be > 0")
	}
	if p.Number > p.TotalStages {
		return apperrors.NewArgumentError("stage number cannot exceed total stages")
	}
	return nil
}

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// ProgressSymbols holds the symbol set selected for the terminal.
type ProgressSymbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}
