// Package content resolves a rendered note into a self-contained HTML
// payload: embeds are inlined depth-first with cycle protection, internal
// links are rewritten for the target output kind, and placeholder elements
// are normalized into portable HTML.
package content

import (
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/noteport/noteport/internal/frontmatter"
	"github.com/noteport/noteport/internal/render"
)

// OutputKind distinguishes HTML exports from everything else. Non-HTML
// pipelines cannot carry interactive vector markup, so diagrams are
// rasterized for them.
type OutputKind int

const (
	// OutputHTML is an export whose final artifact is HTML.
	OutputHTML OutputKind = iota
	// OutputOther is any non-HTML artifact (pdf, docx, epub, ...).
	OutputOther
)

// KindForPath derives the output kind from the artifact's extension.
func KindForPath(outputPath string) OutputKind {
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".html", ".htm":
		return OutputHTML
	default:
		return OutputOther
	}
}

// LinkPolicy selects how internal links are rewritten.
type LinkPolicy int

const (
	// LinkKeepEditable keeps the anchor element, optionally appending a
	// configured extension to the target.
	LinkKeepEditable LinkPolicy = iota
	// LinkStrip removes the link and its text entirely.
	LinkStrip
	// LinkTextOnly replaces the link with its display text.
	LinkTextOnly
	// LinkUnchanged restores the bracketed wikilink text.
	LinkUnchanged
)

// ParseLinkPolicy maps a configuration string onto a LinkPolicy.
func ParseLinkPolicy(s string) (LinkPolicy, bool) {
	switch s {
	case "keep", "":
		return LinkKeepEditable, true
	case "strip":
		return LinkStrip, true
	case "text":
		return LinkTextOnly, true
	case "unchanged":
		return LinkUnchanged, true
	default:
		return LinkKeepEditable, false
	}
}

// VaultFS resolves a wikilink target to a note's location and raw source.
// The host file abstraction behind it is out of scope; DirVault is the
// directory-backed implementation.
type VaultFS interface {
	ReadNote(target string) (path string, src []byte, err error)
}

// Resolver drives one export's content resolution. A Resolver is built per
// export and holds no state across calls; recursion is sequential and
// depth-first within one export.
type Resolver struct {
	Vault  VaultFS
	Render render.Renderer

	// Policy and Extension control internal link rewriting.
	Policy    LinkPolicy
	Extension string

	// Kind selects output-specific normalization.
	Kind OutputKind

	// MediaDir receives rasterized diagram images; RasterScale is the
	// sampling density multiplier (1 = native size).
	MediaDir    string
	RasterScale float64

	// ResolveMedia maps an image reference to a loadable path. Nil leaves
	// references untouched.
	ResolveMedia func(ref, docDir string) string

	// Logf receives recoverable resolution failures. Nil discards them.
	Logf func(format string, args ...any)
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}

// ResolveDocument resolves the top-level note and wraps the result in a
// document shell. Styles are aggregated into the shell head; nested
// fragments are never wrapped.
func (r *Resolver) ResolveDocument(docPath string, body []byte, title string, styles []string) (*html.Node, error) {
	frag, err := r.resolveFragment(body, docPath, []string{identity(docPath)})
	if err != nil {
		return nil, err
	}
	return wrapDocument(frag, title, styles), nil
}

// resolveFragment renders src and transforms the resulting tree. chain
// holds the identities currently being inlined, including the document
// owning src; recursive calls get a fresh extended copy, never a shared
// slice.
func (r *Resolver) resolveFragment(src []byte, docPath string, chain []string) (*html.Node, error) {
	body, err := r.Render.Render(src)
	if err != nil {
		return nil, err
	}

	// Snapshot before mutating: spliced fragments are already fully
	// processed by the recursive call and must not be visited again.
	var embeds, links, images []*html.Node
	walk(body, func(n *html.Node) {
		switch {
		case isElem(n, "span") && hasClass(n, "internal-embed"):
			embeds = append(embeds, n)
		case isElem(n, "a") && hasClass(n, "internal-link"):
			links = append(links, n)
		case isElem(n, "img"):
			images = append(images, n)
		}
	})

	docDir := filepath.Dir(docPath)
	for _, n := range embeds {
		r.resolveEmbed(n, docDir, chain)
	}
	for _, n := range links {
		r.rewriteLink(n)
	}
	for _, n := range images {
		r.normalizeImage(n, docDir)
	}
	return body, nil
}

// resolveEmbed replaces one internal-embed placeholder: image embeds become
// img elements, note embeds are inlined recursively, cycles fall back to a
// cross-reference link, and load failures drop the embed.
func (r *Resolver) resolveEmbed(n *html.Node, docDir string, chain []string) {
	target, _, _ := strings.Cut(getAttr(n, "src"), "#")
	if target == "" {
		removeNode(n)
		return
	}

	if isImageTarget(target) {
		img := &html.Node{Type: html.ElementNode, Data: "img"}
		setAttr(img, "src", target)
		setAttr(img, "alt", target)
		n.Parent.InsertBefore(img, n)
		removeNode(n)
		r.normalizeImage(img, docDir)
		return
	}

	path, src, err := r.Vault.ReadNote(target)
	if err != nil {
		r.logf("skipping embed %q: %v", target, err)
		removeNode(n)
		return
	}

	if slices.Contains(chain, identity(path)) {
		link := internalLink(target)
		n.Parent.InsertBefore(link, n)
		removeNode(n)
		r.rewriteLink(link)
		return
	}

	// Embedded notes carry their own frontmatter; only the body is inlined.
	_, embedBody, err := frontmatter.Extract(src)
	if err != nil {
		r.logf("skipping embed %q: %v", target, err)
		removeNode(n)
		return
	}

	sub, err := r.resolveFragment(embedBody, path, append(slices.Clone(chain), identity(path)))
	if err != nil {
		r.logf("skipping embed %q: %v", target, err)
		removeNode(n)
		return
	}

	for sub.FirstChild != nil {
		c := sub.FirstChild
		sub.RemoveChild(c)
		n.Parent.InsertBefore(c, n)
	}
	removeNode(n)
}

// rewriteLink applies the configured link policy to one internal link.
func (r *Resolver) rewriteLink(n *html.Node) {
	switch r.Policy {
	case LinkStrip:
		removeNode(n)

	case LinkTextOnly:
		replaceWithText(n, innerText(n))

	case LinkUnchanged:
		replaceWithText(n, "[["+innerText(n)+"]]")

	case LinkKeepEditable:
		if r.Extension == "" {
			return
		}
		href := getAttr(n, "href")
		// The extension goes before any in-document anchor, never after it.
		base, anchor, hasAnchor := strings.Cut(href, "#")
		base += "." + r.Extension
		if hasAnchor {
			base += "#" + anchor
		}
		setAttr(n, "href", base)
	}
}

// normalizeImage resolves an image's source and, for non-HTML output,
// rasterizes vector images into static rasters of the same visible size.
func (r *Resolver) normalizeImage(n *html.Node, docDir string) {
	src := getAttr(n, "src")
	if src == "" || strings.Contains(src, "://") {
		return
	}

	if r.ResolveMedia != nil {
		src = r.ResolveMedia(src, docDir)
		setAttr(n, "src", src)
	}

	if r.Kind == OutputHTML || strings.ToLower(filepath.Ext(src)) != ".svg" {
		return
	}

	scale := r.RasterScale
	if scale <= 0 {
		scale = 1
	}
	pngPath, w, h, err := rasterizeSVG(src, r.MediaDir, scale)
	if err != nil {
		r.logf("keeping vector image %q: %v", src, err)
		return
	}
	setAttr(n, "src", pngPath)
	setAttr(n, "width", itoa(w))
	setAttr(n, "height", itoa(h))
}

func internalLink(target string) *html.Node {
	link := &html.Node{Type: html.ElementNode, Data: "a"}
	setAttr(link, "class", "internal-link")
	setAttr(link, "href", target)
	link.AppendChild(&html.Node{Type: html.TextNode, Data: target})
	return link
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".svg": true, ".webp": true,
}

func isImageTarget(target string) bool {
	return imageExts[strings.ToLower(filepath.Ext(target))]
}

// identity normalizes a note path into the form used for cycle detection.
func identity(path string) string {
	return filepath.Clean(path)
}
