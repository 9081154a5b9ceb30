// Package render turns markdown note source into an HTML node tree for the
// content resolver to transform.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/wikilink"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer renders one note's source into a detached body node whose
// children are the rendered fragment. Implementations must be safe for
// reuse across documents within one export.
type Renderer interface {
	Render(src []byte) (*html.Node, error)
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmark builds the default renderer: GFM markdown with wikilink and
// embed syntax. Wikilinks come out as placeholder elements
// (a.internal-link, span.internal-embed) that the content resolver
// rewrites for the target output kind.
func NewGoldmark() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			&wikilink.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(&placeholderRenderer{}, 100),
			),
		),
	)
	return &goldmarkRenderer{md: md}
}

func (r *goldmarkRenderer) Render(src []byte) (*html.Node, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return ParseFragment(buf.Bytes())
}

// ParseFragment parses rendered HTML into a detached body node holding the
// fragment's top-level nodes.
func ParseFragment(fragment []byte) (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing rendered fragment: %w", err)
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}
