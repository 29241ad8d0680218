/*
Package elq implements element-level responsive breakpoints for HTML
documents: each managed element is annotated with a discrete state name
chosen from its own width-keyed breakpoint table, so that styling can
react to the element's rendered size instead of the viewport's.

Overview

Elements opt in by carrying a configuration attribute (data-eq-pts by
default) listing named width thresholds:

    <div data-eq-pts="small: 280, medium: 420, large: 640">…</div>

An Engine scans the document for such elements (RefreshNodes), measures
their widths through a measure.Measurer, resolves each width against the
element's breakpoint table, and writes the winning state name into an
output attribute (data-eq-state by default). An element smaller than
every one of its thresholds has the attribute removed instead. Styling
rules then key on the attribute value:

    div[data-eq-state="large"] { … }

Query drives one such cycle. On the initial load the write-back runs
synchronously; on subsequent cycles (viewport resizes, typically) it is
deferred through a frame.Scheduler, which coalesces bursts of requests
into at most one write-back per frame and keeps the layout-reading
measurement apart from the DOM-mutating writes.

Elements with unusable breakpoint configurations degrade silently to no
state; a broken element never aborts a batch and never breaks its
siblings. The degradation is visible in the trace log only.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package elq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'elq.engine'.
func tracer() tracing.Trace {
	return tracing.Select("elq.engine")
}
