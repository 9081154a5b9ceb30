package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display orchestrates the progress indicators for one export.
type Display struct {
	capabilities TerminalCapabilities
	currentStage *StageInfo
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
}

// NewDisplay creates a progress display for the given terminal capabilities.
func NewDisplay(caps TerminalCapabilities) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// StartStage begins displaying progress for a stage.
func (p *Display) StartStage(stage StageInfo) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	p.currentStage = &stage
	msg := buildStageMessage(stage, "Running")

	if p.capabilities.IsTTY {
		p.spinner = spinner.New(
			spinner.CharSets[p.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		// Stderr keeps the spinner out of anything piped from stdout.
		p.spinner.Writer = os.Stderr
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
	} else {
		fmt.Println(msg)
	}

	return nil
}

// CompleteStage stops the current stage with a success mark.
func (p *Display) CompleteStage() {
	p.finish(checkmark(p.symbols, p.capabilities.SupportsColor), "Completed")
}

// FailStage stops the current stage with a failure mark.
func (p *Display) FailStage() {
	p.finish(failureMark(p.symbols, p.capabilities.SupportsColor), "Failed")
}

func (p *Display) finish(mark, action string) {
	if p.currentStage == nil {
		return
	}
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
	fmt.Printf("%s %s\n", mark, buildStageMessage(*p.currentStage, action))
	p.currentStage = nil
}
