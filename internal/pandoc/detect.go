package pandoc

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Capability records a detected pandoc installation. It is constructed once
// per session and passed explicitly into the export pipeline; availability is
// a fact carried by this record, not process-global state.
type Capability struct {
	// Path is the resolved location of the pandoc binary.
	Path string
	// Version is the version reported by `pandoc --version`.
	Version string
}

// Detect locates the pandoc binary and probes its version. If explicitPath
// is non-empty it is used as-is; otherwise PATH is searched.
func Detect(ctx context.Context, explicitPath string) (*Capability, error) {
	path := explicitPath
	if path == "" {
		found, err := exec.LookPath("pandoc")
		if err != nil {
			return nil, fmt.Errorf("pandoc not found in PATH: %w", err)
		}
		path = found
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("probing %s --version: %w", path, err)
	}

	version := "unknown"
	if line, _, _ := strings.Cut(string(out), "\n"); line != "" {
		// First line reads "pandoc 3.1.9" or similar.
		if fields := strings.Fields(line); len(fields) >= 2 {
			version = fields[1]
		}
	}

	return &Capability{Path: path, Version: version}, nil
}
