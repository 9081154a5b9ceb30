package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err      error
		expected int
	}{
		"nil is success":        {err: nil, expected: ExitSuccess},
		"exit error code":       {err: NewExitError(ExitMissingDependencies), expected: ExitMissingDependencies},
		"plain error defaults":  {err: errors.New("boom"), expected: ExitExportFailed},
		"invalid argument code": {err: NewExitError(ExitInvalidArguments), expected: ExitInvalidArguments},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, ExitCode(test.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewExitError(3)
	assert.Contains(t, err.Error(), "3")
}
