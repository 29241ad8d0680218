package elq

import (
	"github.com/npillmayer/elq/breakpoint"
	"golang.org/x/net/html"
)

// snapshot is the measured record of one cycle: the working set together
// with parallel arrays of widths and parsed breakpoint tables, aligned
// by index. It is built once per measurement pass and never mutated
// afterwards, so a deferred write-back stays consistent even if the
// registry refreshes in between.
type snapshot struct {
	nodes  []*html.Node
	widths []float64
	tables []breakpoint.Table
}

func (s snapshot) size() int {
	return len(s.nodes)
}
