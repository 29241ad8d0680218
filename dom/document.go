package dom

import (
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document wraps the root of an HTML parse tree.
type Document struct {
	root *html.Node
}

// FromHTML reads and parses an HTML document.
func FromHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// FromNode wraps an existing parse (sub-)tree. Useful when the host
// already owns a document and hands us a fragment of it.
func FromNode(n *html.Node) *Document {
	return &Document{root: n}
}

// Root returns the document's root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// QueryAll returns all element nodes matching a CSS selector, in
// document order.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	nodes := sel.MatchAll(d.root)
	tracer().P("selector", selector).Debugf("document query matched %d node(s)", len(nodes))
	return nodes, nil
}

// WriteHTML serializes the document.
func (d *Document) WriteHTML(w io.Writer) error {
	return html.Render(w, d.root)
}

// NodeName returns a display name for a node: the tag name for elements,
// "#text" for text nodes, "#document" for the root.
func NodeName(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return n.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#unknown"
}
