package pandoc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Result reports a completed conversion. Warnings carries any diagnostic
// text pandoc wrote to stderr even though the artifact was produced.
type Result struct {
	OutputPath string
	Warnings   string
}

// RunError reports a failed conversion together with pandoc's own
// diagnostics from the error channel.
type RunError struct {
	Err         error
	Diagnostics string
}

func (e *RunError) Error() string {
	if e.Diagnostics != "" {
		return fmt.Sprintf("pandoc failed: %v\n%s", e.Err, e.Diagnostics)
	}
	return fmt.Sprintf("pandoc failed: %v", e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// Runner invokes pandoc once per export: a complete argument vector and
// input payload in, a produced artifact or diagnostics out. No partial
// progress is streamed.
type Runner interface {
	Run(ctx context.Context, cap *Capability, args []string, payload []byte, outputPath string) (*Result, error)
}

// ExecRunner runs pandoc as a subprocess, feeding the payload on stdin.
type ExecRunner struct {
	// Timeout bounds one invocation in seconds. Zero means no timeout.
	Timeout int
}

// Run executes pandoc and waits for completion. Success requires both a
// zero exit status and the artifact existing on disk; stderr output on
// success is returned as warnings rather than an error.
func (r *ExecRunner) Run(ctx context.Context, cap *Capability, args []string, payload []byte, outputPath string) (*Result, error) {
	if cap == nil || cap.Path == "" {
		return nil, fmt.Errorf("no pandoc capability provided")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(r.Timeout)*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, cap.Path, args...)
	cmd.Stdin = bytes.NewReader(payload)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	diagnostics := stderr.String()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, &RunError{Err: fmt.Errorf("timed out after %ds", r.Timeout), Diagnostics: diagnostics}
	}
	if err != nil {
		return nil, &RunError{Err: err, Diagnostics: diagnostics}
	}
	if _, statErr := os.Stat(outputPath); statErr != nil {
		return nil, &RunError{
			Err:         fmt.Errorf("pandoc exited cleanly but produced no artifact at %s", outputPath),
			Diagnostics: diagnostics,
		}
	}

	return &Result{OutputPath: outputPath, Warnings: diagnostics}, nil
}
