// Package config loads the noteport configuration from layered sources.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the noteport CLI settings.
type Configuration struct {
	// PandocPath overrides PATH lookup for the pandoc binary.
	PandocPath string `koanf:"pandoc_path"`
	// VaultDir is the root of the notes vault.
	VaultDir string `koanf:"vault_dir" validate:"required"`
	// ResolveDir is an extra directory searched when resolving file-valued
	// directives, absolute or vault-relative.
	ResolveDir string `koanf:"resolve_dir"`
	// ExtraArgs are default pandoc arguments applied to every export, ahead
	// of per-document directives.
	ExtraArgs []string `koanf:"extra_args"`
	// LinkPolicy selects internal link rewriting: keep, strip, text, or
	// unchanged.
	LinkPolicy string `koanf:"link_policy" validate:"omitempty,oneof=keep strip text unchanged"`
	// LinkExtension is appended to kept internal links.
	LinkExtension string `koanf:"link_extension"`
	// Timeout bounds one pandoc invocation in seconds (0 = no timeout).
	Timeout int `koanf:"timeout" validate:"omitempty,min=0,max=86400"`
	// RasterScale is the sampling density used when rasterizing vector
	// diagrams for non-HTML output.
	RasterScale float64 `koanf:"raster_scale" validate:"omitempty,min=1,max=8"`
	// ShowProgress enables spinners during execution.
	ShowProgress bool `koanf:"show_progress"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".noteport", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	k.Load(env.Provider("NOTEPORT_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.VaultDir = expandHomePath(cfg.VaultDir)
	cfg.ResolveDir = expandHomePath(cfg.ResolveDir)

	return &cfg, nil
}

// envTransform maps NOTEPORT_VAULT_DIR to vault_dir.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "NOTEPORT_"))
}

// expandHomePath expands a leading ~ to the user's home directory.
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
		}
	}
	return path
}
