/*
Package frame abstracts the host's paint-frame scheduling primitive.

Element-query cycles want their DOM-mutating write-back batched to the
next paint opportunity, with redundant requests within one frame
collapsing into a single callback invocation. Browsers offer
requestAnimationFrame for this; outside a browser an interval timer with
at-most-once-per-interval semantics is an equivalent stand-in, which is
what Ticker provides. Synchronous degenerates to immediate invocation for
batch processing and tests.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elq.frame'.
func tracer() tracing.Trace {
	return tracing.Select("elq.frame")
}
