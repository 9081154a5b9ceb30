package config

// GetDefaults returns the default configuration values applied before any
// config file or environment override.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"pandoc_path":    "",
		"vault_dir":      ".",
		"resolve_dir":    "",
		"extra_args":     []string{},
		"link_policy":    "keep",
		"link_extension": "html",
		"timeout":        300,
		"raster_scale":   2.0,
		"show_progress":  true,
	}
}
