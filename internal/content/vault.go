package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirVault is a directory-backed VaultFS. A wikilink target resolves to the
// matching markdown file: an explicit path is tried relative to the root,
// and a bare name is searched for anywhere in the vault by base name,
// first match in lexical walk order.
type DirVault struct {
	Root string
}

// ReadNote resolves target to a note and returns its path and raw source.
func (v *DirVault) ReadNote(target string) (string, []byte, error) {
	name := target
	if !strings.EqualFold(filepath.Ext(name), ".md") {
		name += ".md"
	}

	direct := filepath.Join(v.Root, filepath.FromSlash(name))
	if _, err := os.Stat(direct); err == nil {
		src, err := os.ReadFile(direct)
		return direct, src, err
	}

	if strings.ContainsRune(name, '/') {
		return "", nil, fmt.Errorf("note %q not found in vault", target)
	}

	found := ""
	err := filepath.WalkDir(v.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			// Hidden directories hold host-application state, not notes.
			if path != v.Root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.EqualFold(d.Name(), name) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	if found == "" {
		return "", nil, fmt.Errorf("note %q not found in vault", target)
	}

	src, err := os.ReadFile(found)
	return found, src, err
}
