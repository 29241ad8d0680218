/*
Package measure abstracts the layout engine collaborator of element
queries: a synchronous read of an element's current rendered width, in
CSS pixels.

No full layout engine ships with this module. Hosts embedding a real one
implement Measurer on top of it; everyone else picks one of the bundled
width sources. Fixed serves explicit widths, AttrWidths reads the HTML
width attribute, and CascadeMeasurer estimates widths from a viewport
width and the inline-style width cascade.

A width of 0 is a valid measurement, not an error; detached or
unconstrained nodes simply measure as whatever their width source says,
and resolution handles 0 like any other width.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package measure

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elq.measure'.
func tracer() tracing.Trace {
	return tracing.Select("elq.measure")
}
