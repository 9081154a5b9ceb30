package content

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// wrapDocument builds a self-contained document shell around a resolved
// fragment: doctype, charset declaration, title, and aggregated styles.
// Only the top-level document gets a shell.
func wrapDocument(frag *html.Node, title string, styles []string) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := elem("html", atom.Html)
	doc.AppendChild(root)

	head := elem("head", atom.Head)
	root.AppendChild(head)

	meta := elem("meta", atom.Meta)
	setAttr(meta, "charset", "utf-8")
	head.AppendChild(meta)

	titleEl := elem("title", atom.Title)
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleEl)

	for _, css := range styles {
		style := elem("style", atom.Style)
		style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
		head.AppendChild(style)
	}

	body := elem("body", atom.Body)
	root.AppendChild(body)
	for frag.FirstChild != nil {
		c := frag.FirstChild
		frag.RemoveChild(c)
		body.AppendChild(c)
	}
	return doc
}

func elem(name string, a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: name, DataAtom: a}
}

// Serialize renders a resolved document into the byte payload handed to
// pandoc.
func Serialize(doc *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
