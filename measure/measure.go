package measure

import (
	"github.com/npillmayer/elq/dom"
	"golang.org/x/net/html"
)

// Measurer provides the current rendered width of an element, in CSS
// pixels. It stands in for the host's layout engine and must be a
// synchronous read.
type Measurer interface {
	Width(n *html.Node) float64
}

// Fixed maps nodes to explicit widths. Nodes without an entry measure as
// Default. The zero value measures everything as 0.
type Fixed struct {
	Widths  map[*html.Node]float64
	Default float64
}

func (f Fixed) Width(n *html.Node) float64 {
	if w, ok := f.Widths[n]; ok {
		return w
	}
	return f.Default
}

// AttrWidths reads the element's HTML width attribute, leniently
// ("420px" measures as 420). Elements without a usable width attribute
// measure as 0.
type AttrWidths struct{}

func (AttrWidths) Width(n *html.Node) float64 {
	value, ok := dom.Attr(n, "width")
	if !ok {
		return 0
	}
	w, ok := parsePixels(value)
	if !ok {
		return 0
	}
	return w
}

var _ Measurer = Fixed{}
var _ Measurer = AttrWidths{}
