package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteport/noteport/internal/render"
)

func writeNote(t *testing.T, vault, name, src string) string {
	t.Helper()
	path := filepath.Join(vault, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func newResolver(vault string) *Resolver {
	return &Resolver{
		Vault:     &DirVault{Root: vault},
		Render:    render.NewGoldmark(),
		Policy:    LinkKeepEditable,
		Extension: "html",
		Kind:      OutputHTML,
	}
}

func resolveToString(t *testing.T, r *Resolver, docPath string, src string) string {
	t.Helper()
	doc, err := r.ResolveDocument(docPath, []byte(src), "Test", nil)
	require.NoError(t, err)
	out, err := Serialize(doc)
	require.NoError(t, err)
	return string(out)
}

func TestResolveDocumentWrapsTopLevelOnly(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeNote(t, vault, "Inner.md", "inner text\n")
	a := writeNote(t, vault, "A.md", "before\n\n![[Inner]]\n")

	r := newResolver(vault)
	out := resolveToString(t, r, a, "before\n\n![[Inner]]\n")

	assert.Equal(t, 1, strings.Count(out, "<head>"), "only the top-level document gets a shell")
	assert.Contains(t, out, "<meta charset=\"utf-8\"")
	assert.Contains(t, out, "<title>Test</title>")
	assert.Contains(t, out, "inner text")
}

func TestResolveDocumentAggregatesStyles(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	a := writeNote(t, vault, "A.md", "text\n")

	r := newResolver(vault)
	doc, err := r.ResolveDocument(a, []byte("text\n"), "Styled", []string{"body { margin: 0 }"})
	require.NoError(t, err)
	out, err := Serialize(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<style>body { margin: 0 }</style>")
}

func TestEmbedInlining(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeNote(t, vault, "Child.md", "---\ntitle: Child\n---\nchild body\n")
	a := writeNote(t, vault, "A.md", "")

	r := newResolver(vault)
	out := resolveToString(t, r, a, "![[Child]]\n")

	assert.Contains(t, out, "child body")
	assert.NotContains(t, out, "internal-embed")
	// The embedded note's frontmatter must not leak into the payload.
	assert.NotContains(t, out, "title: Child")
}

func TestEmbedCycleTerminatesWithLink(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeNote(t, vault, "A.md", "alpha\n\n![[B]]\n")
	writeNote(t, vault, "B.md", "beta\n\n![[A]]\n")
	a := filepath.Join(vault, "A.md")

	r := newResolver(vault)
	out := resolveToString(t, r, a, "alpha\n\n![[B]]\n")

	assert.Contains(t, out, "beta")
	// The second occurrence of A renders as a link, not an inline copy.
	assert.Contains(t, out, `href="A.html"`)
	assert.Equal(t, 1, strings.Count(out, "alpha"))
}

func TestSelfEmbedTerminates(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	a := writeNote(t, vault, "A.md", "self\n\n![[A]]\n")

	r := newResolver(vault)
	out := resolveToString(t, r, a, "self\n\n![[A]]\n")
	assert.Equal(t, 1, strings.Count(out, "self"))
	assert.Contains(t, out, `href="A.html"`)
}

func TestBrokenEmbedIsDroppedAndLogged(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	a := writeNote(t, vault, "A.md", "")

	var logged []string
	r := newResolver(vault)
	r.Logf = func(format string, args ...any) {
		logged = append(logged, format)
	}

	out := resolveToString(t, r, a, "before\n\n![[Missing]]\n\nafter\n")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
	assert.NotContains(t, out, "internal-embed")
	assert.NotEmpty(t, logged, "load failure must be logged")
}

func TestEmbedResolvesByBaseNameAnywhereInVault(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeNote(t, vault, "deep/nested/Child.md", "found me\n")
	a := writeNote(t, vault, "A.md", "")

	r := newResolver(vault)
	out := resolveToString(t, r, a, "![[Child]]\n")
	assert.Contains(t, out, "found me")
}

func TestLinkPolicies(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()

	tests := map[string]struct {
		policy    LinkPolicy
		extension string
		src       string
		contains  []string
		absent    []string
	}{
		"keep appends extension": {
			policy: LinkKeepEditable, extension: "html",
			src:      "See [[Note]].\n",
			contains: []string{`href="Note.html"`},
		},
		"keep inserts extension before anchor": {
			policy: LinkKeepEditable, extension: "html",
			src:      "See [[Note#Heading]].\n",
			contains: []string{`href="Note.html#Heading"`},
			absent:   []string{"Note#Heading.html"},
		},
		"keep without extension leaves href alone": {
			policy: LinkKeepEditable, extension: "",
			src:      "See [[Note]].\n",
			contains: []string{`href="Note"`},
		},
		"strip removes link and text": {
			policy: LinkStrip,
			src:    "See [[Note]].\n",
			absent: []string{"Note", "internal-link"},
		},
		"text keeps display text only": {
			policy: LinkTextOnly,
			src:    "See [[Note|the note]].\n",
			contains: []string{"the note"},
			absent:   []string{"<a", "internal-link"},
		},
		"unchanged restores brackets": {
			policy: LinkUnchanged,
			src:    "See [[Note]].\n",
			contains: []string{"[[Note]]"},
			absent:   []string{"<a"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := filepath.Join(vault, "A.md")
			r := newResolver(vault)
			r.Policy = test.policy
			r.Extension = test.extension

			out := resolveToString(t, r, a, test.src)
			for _, want := range test.contains {
				assert.Contains(t, out, want)
			}
			for _, not := range test.absent {
				assert.NotContains(t, out, not)
			}
		})
	}
}

func TestImageEmbedBecomesImg(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	a := writeNote(t, vault, "A.md", "")

	r := newResolver(vault)
	r.ResolveMedia = func(ref, docDir string) string {
		return filepath.Join(vault, ref)
	}

	out := resolveToString(t, r, a, "![[diagram.png]]\n")
	assert.Contains(t, out, "<img")
	assert.Contains(t, out, filepath.Join(vault, "diagram.png"))
	assert.NotContains(t, out, "internal-embed")
}

func TestRemoteImagesLeftAlone(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	a := writeNote(t, vault, "A.md", "")

	r := newResolver(vault)
	r.ResolveMedia = func(ref, docDir string) string {
		t.Fatal("remote references must not hit the media resolver")
		return ref
	}

	out := resolveToString(t, r, a, "![x](https://example.com/pic.png)\n")
	assert.Contains(t, out, "https://example.com/pic.png")
}

func TestSVGRasterizedForNonHTMLOutput(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	svg := filepath.Join(vault, "diagram.svg")
	require.NoError(t, os.WriteFile(svg, []byte(
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50">`+
			`<rect width="100" height="50" fill="#336699"/></svg>`), 0644))
	a := writeNote(t, vault, "A.md", "")

	r := newResolver(vault)
	r.Kind = OutputOther
	r.MediaDir = t.TempDir()
	r.RasterScale = 2
	r.ResolveMedia = func(ref, docDir string) string { return filepath.Join(vault, ref) }

	out := resolveToString(t, r, a, "![[diagram.svg]]\n")
	assert.Contains(t, out, "diagram-")
	assert.NotContains(t, out, "diagram.svg")
	assert.Contains(t, out, `width="100"`)
	assert.Contains(t, out, `height="50"`)

	// The raster is sampled at double density but keeps visible size.
	rasters, err := filepath.Glob(filepath.Join(r.MediaDir, "diagram-*.png"))
	require.NoError(t, err)
	assert.Len(t, rasters, 1)
}

func TestSameNameSVGsRasterizeToDistinctFiles(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeSVG := func(dir string) {
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "diagram.svg"), []byte(
			`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">`+
				`<rect width="10" height="10"/></svg>`), 0644))
	}
	writeSVG(filepath.Join(vault, "alpha"))
	writeSVG(filepath.Join(vault, "beta"))

	mediaDir := t.TempDir()
	first, _, _, err := rasterizeSVG(filepath.Join(vault, "alpha", "diagram.svg"), mediaDir, 1)
	require.NoError(t, err)
	second, _, _, err := rasterizeSVG(filepath.Join(vault, "beta", "diagram.svg"), mediaDir, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, p := range []string{first, second} {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestSVGKeptForHTMLOutput(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	a := writeNote(t, vault, "A.md", "")

	r := newResolver(vault)
	r.Kind = OutputHTML

	out := resolveToString(t, r, a, "![[diagram.svg]]\n")
	assert.Contains(t, out, "diagram.svg")
	assert.NotContains(t, out, "diagram.png")
}

func TestKindForPath(t *testing.T) {
	t.Parallel()

	tests := map[string]OutputKind{
		"out.html": OutputHTML,
		"out.HTM":  OutputHTML,
		"out.pdf":  OutputOther,
		"out.docx": OutputOther,
		"out":      OutputOther,
	}
	for path, want := range tests {
		assert.Equal(t, want, KindForPath(path), path)
	}
}

func TestParseLinkPolicy(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		want LinkPolicy
		ok   bool
	}{
		"keep":      {want: LinkKeepEditable, ok: true},
		"":          {want: LinkKeepEditable, ok: true},
		"strip":     {want: LinkStrip, ok: true},
		"text":      {want: LinkTextOnly, ok: true},
		"unchanged": {want: LinkUnchanged, ok: true},
		"bogus":     {want: LinkKeepEditable, ok: false},
	}
	for input, test := range tests {
		got, ok := ParseLinkPolicy(input)
		assert.Equal(t, test.want, got, input)
		assert.Equal(t, test.ok, ok, input)
	}
}

func TestDirVault(t *testing.T) {
	t.Parallel()

	t.Run("explicit relative path", func(t *testing.T) {
		t.Parallel()
		vault := t.TempDir()
		writeNote(t, vault, "sub/Note.md", "content\n")

		v := &DirVault{Root: vault}
		path, src, err := v.ReadNote("sub/Note")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(vault, "sub", "Note.md"), path)
		assert.Equal(t, "content\n", string(src))
	})

	t.Run("hidden directories are skipped", func(t *testing.T) {
		t.Parallel()
		vault := t.TempDir()
		writeNote(t, vault, ".hidden/Secret.md", "nope\n")

		v := &DirVault{Root: vault}
		_, _, err := v.ReadNote("Secret")
		assert.Error(t, err)
	})

	t.Run("missing note errors", func(t *testing.T) {
		t.Parallel()
		v := &DirVault{Root: t.TempDir()}
		_, _, err := v.ReadNote("Nowhere")
		assert.Error(t, err)
	})
}
