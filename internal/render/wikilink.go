package render

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/wikilink"
)

// placeholderRenderer overrides the wikilink extension's default output.
// `[[Target#Heading|alias]]` becomes an internal-link anchor and
// `![[Target]]` becomes an internal-embed span, matching the placeholder
// shapes the content resolver transforms.
type placeholderRenderer struct{}

func (r *placeholderRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(wikilink.Kind, r.render)
}

func (r *placeholderRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*wikilink.Node)

	target := string(n.Target)
	if len(n.Fragment) > 0 {
		target += "#" + string(n.Fragment)
	}

	if n.Embed {
		if entering {
			_, _ = w.WriteString(`<span class="internal-embed" src="`)
			_, _ = w.Write(util.EscapeHTML([]byte(target)))
			_, _ = w.WriteString(`">`)
			return ast.WalkSkipChildren, nil
		}
		_, _ = w.WriteString("</span>")
		return ast.WalkContinue, nil
	}

	if entering {
		_, _ = w.WriteString(`<a class="internal-link" href="`)
		_, _ = w.Write(util.EscapeHTML([]byte(target)))
		_, _ = w.WriteString(`">`)
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}
