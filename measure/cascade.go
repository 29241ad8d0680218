package measure

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/elq/css"
	"github.com/npillmayer/elq/dom"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
)

// CascadeMeasurer estimates rendered widths from a viewport width and
// the inline-style width cascade: every element starts out filling its
// containing block, a fixed `width` declaration pins it, a percentage
// resolves against the nearest ancestor with a resolved width. A crude
// model of block layout, but deterministic and usable without a layout
// engine.
type CascadeMeasurer struct {
	Viewport float64
}

// NewCascade creates a CascadeMeasurer for a viewport width in CSS
// pixels.
func NewCascade(viewport float64) CascadeMeasurer {
	return CascadeMeasurer{Viewport: viewport}
}

func (c CascadeMeasurer) Width(n *html.Node) float64 {
	return c.resolve(n)
}

func (c CascadeMeasurer) resolve(n *html.Node) float64 {
	if n == nil {
		return 0 // detached from the document
	}
	if n.Type == html.DocumentNode {
		return c.Viewport
	}
	if n.Type != html.ElementNode {
		return c.resolve(n.Parent)
	}
	var du dimen.DU
	var pcnt float64
	switch m := declaredWidth(n).Match(); m {
	case m.Just(&du):
		return float64(du) / float64(css.PxUnit)
	case m.Percentage(&pcnt):
		return c.resolve(n.Parent) * pcnt / 100
	}
	// auto: fill the containing block
	return c.resolve(n.Parent)
}

// declaredWidth extracts the width declared on an element itself, from
// the inline style attribute first, the HTML width attribute second.
func declaredWidth(n *html.Node) css.WidthT {
	if style, ok := dom.Attr(n, "style"); ok {
		decls, err := parser.ParseDeclarations(terminate(style))
		if err != nil {
			tracer().P("element", dom.NodeName(n)).Infof("unparsable style attribute ignored: %v", err)
		} else {
			w, found := css.Auto(), false
			for _, d := range decls { // last declaration wins
				if strings.EqualFold(d.Property, "width") {
					w = css.ParseWidth(d.Value)
					found = true
				}
			}
			if found {
				return w
			}
		}
	}
	if value, ok := dom.Attr(n, "width"); ok {
		if px, ok := parsePixels(value); ok {
			return css.Px(px)
		}
	}
	return css.Auto()
}

// terminate closes an inline style string with ';'. douceur's
// declaration parser yields an empty value for a final declaration that
// is not ';'-terminated, and inline styles usually aren't.
func terminate(style string) string {
	style = strings.TrimSpace(style)
	if style == "" || strings.HasSuffix(style, ";") {
		return style
	}
	return style + ";"
}

// parsePixels interprets an attribute value as a fixed pixel width.
func parsePixels(value string) (float64, bool) {
	var du dimen.DU
	switch m := css.ParseWidth(value).Match(); m {
	case m.Just(&du):
		return float64(du) / float64(css.PxUnit), true
	}
	return 0, false
}

var _ Measurer = CascadeMeasurer{}
