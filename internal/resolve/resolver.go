// Package resolve locates file references from directives against the
// vault's search path.
package resolve

import (
	"os"
	"path/filepath"
)

// conventionalDirs are vault subdirectories tried last, in order, when a
// reference matches nothing more specific.
var conventionalDirs = []string{"templates", "pandoc", "assets", "attachments"}

// Resolver resolves relative file references for file-valued directives.
// Each call is independent and performs only read-only existence checks, so
// a single Resolver is safe for concurrent use.
type Resolver struct {
	// VaultDir is the configured root of the notes vault.
	VaultDir string
	// CustomDir is an optional user-configured search directory, absolute
	// or vault-relative. Empty means unset.
	CustomDir string
}

// Resolve searches for ref and returns the first existing candidate, or ref
// unchanged when nothing matches. A miss is not an error: the unresolved
// name is passed through and pandoc reports its own file-not-found
// diagnostic if it matters.
//
// Search order: ref as given if absolute (trusted, no existence check), then
// relative to docDir, the vault root, the custom directory, and finally each
// conventional vault subdirectory.
func (r *Resolver) Resolve(ref, docDir string) string {
	if filepath.IsAbs(ref) {
		return ref
	}

	candidates := make([]string, 0, 3+len(conventionalDirs))
	if docDir != "" {
		candidates = append(candidates, filepath.Join(docDir, ref))
	}
	if r.VaultDir != "" {
		candidates = append(candidates, filepath.Join(r.VaultDir, ref))
	}
	if r.CustomDir != "" {
		custom := r.CustomDir
		if !filepath.IsAbs(custom) {
			custom = filepath.Join(r.VaultDir, custom)
		}
		candidates = append(candidates, filepath.Join(custom, ref))
	}
	for _, dir := range conventionalDirs {
		candidates = append(candidates, filepath.Join(r.VaultDir, dir, ref))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ref
}
