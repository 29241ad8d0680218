/*
Package dom provides the thin slice of DOM handling that element queries
need: parsing a document, selecting elements by CSS selector, and reading
and writing element attributes.

Overview

The package wraps the HTML parse tree of golang.org/x/net/html rather
than inventing a node type of its own; callers hold plain *html.Node
references throughout. Selection relies on just one non-standard
external library: cascadia.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elq.dom'.
func tracer() tracing.Trace {
	return tracing.Select("elq.dom")
}
