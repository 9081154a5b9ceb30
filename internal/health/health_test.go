package health

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteport/noteport/internal/config"
)

func fakePandoc(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake pandoc script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "pandoc")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho 'pandoc 3.1.9'\n"), 0755))
	return path
}

func TestCheckPandoc(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		check := CheckPandoc(context.Background(), fakePandoc(t))
		assert.True(t, check.Passed)
		assert.Contains(t, check.Message, "3.1.9")
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		check := CheckPandoc(context.Background(), filepath.Join(t.TempDir(), "nope"))
		assert.False(t, check.Passed)
	})
}

func TestCheckVault(t *testing.T) {
	t.Parallel()

	assert.True(t, CheckVault(t.TempDir()).Passed)
	assert.False(t, CheckVault(filepath.Join(t.TempDir(), "missing")).Passed)
}

func TestCheckResolveDir(t *testing.T) {
	t.Parallel()

	t.Run("unset passes", func(t *testing.T) {
		t.Parallel()
		check := CheckResolveDir(&config.Configuration{VaultDir: t.TempDir()})
		assert.True(t, check.Passed)
	})

	t.Run("vault-relative", func(t *testing.T) {
		t.Parallel()
		vault := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(vault, "templates"), 0755))
		check := CheckResolveDir(&config.Configuration{VaultDir: vault, ResolveDir: "templates"})
		assert.True(t, check.Passed)
	})

	t.Run("missing fails", func(t *testing.T) {
		t.Parallel()
		check := CheckResolveDir(&config.Configuration{VaultDir: t.TempDir(), ResolveDir: "gone"})
		assert.False(t, check.Passed)
	})
}

func TestRunChecksAndFormat(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	cfg := &config.Configuration{PandocPath: fakePandoc(t), VaultDir: vault}

	report := RunChecks(context.Background(), cfg)
	assert.True(t, report.Passed)

	out := FormatReport(report)
	assert.Contains(t, out, "Pandoc")
	assert.Contains(t, out, "Vault")
	assert.False(t, strings.Contains(out, "checks failed"))
}
