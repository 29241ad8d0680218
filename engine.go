package elq

import (
	"github.com/npillmayer/elq/breakpoint"
	"github.com/npillmayer/elq/dom"
	"github.com/npillmayer/elq/frame"
	"github.com/npillmayer/elq/measure"
	"golang.org/x/net/html"
)

// Default attribute names, compatible with the common data-attribute
// convention for element queries.
const (
	DefaultConfigAttribute = "data-eq-pts"
	DefaultStateAttribute  = "data-eq-state"
)

// Engine manages the elements of one document and drives their
// measure/resolve/write-back cycles. Hosts own a single Engine per
// document; it is not safe for concurrent use, matching the
// single-threaded event model it is built for.
type Engine struct {
	doc        *dom.Document
	meter      measure.Measurer
	sched      frame.Scheduler
	configAttr string
	stateAttr  string
	nodes      []*html.Node // managed set as of the last refresh
	current    snapshot     // measured snapshot of the last registry cycle
}

// New creates an Engine for a document. Without options it reads
// breakpoints from data-eq-pts, writes states to data-eq-state, measures
// through measure.AttrWidths and defers write-backs through a
// frame.Ticker at the default interval.
func New(doc *dom.Document, opts ...Option) *Engine {
	e := &Engine{
		doc:        doc,
		meter:      measure.AttrWidths{},
		sched:      frame.NewTicker(frame.DefaultInterval),
		configAttr: DefaultConfigAttribute,
		stateAttr:  DefaultStateAttribute,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RefreshNodes re-scans the document for elements carrying the
// configuration attribute and replaces the managed set wholesale; no
// element of an earlier scan survives. It returns the size of the new
// set. The scan also refreshes the measured snapshot, so a following
// Query(nil, …) acts on current widths.
func (e *Engine) RefreshNodes() (int, error) {
	nodes, err := e.doc.QueryAll("[" + e.configAttr + "]")
	if err != nil {
		return 0, err
	}
	e.nodes = nodes
	e.current = e.measurePass(nodes)
	tracer().Debugf("registry refresh: %d element(s) under management", len(nodes))
	return len(nodes), nil
}

// Managed returns the managed set as of the last refresh. The slice is
// the caller's to keep; mutating it does not touch the registry.
func (e *Engine) Managed() []*html.Node {
	nodes := make([]*html.Node, len(e.nodes))
	copy(nodes, e.nodes)
	return nodes
}

// Query runs one element-query cycle.
//
// With an explicit node set it measures and annotates exactly those
// nodes, synchronously, bypassing the registry. With nodes == nil it
// acts on the whole managed set: measurement runs eagerly either way,
// and the write-back runs synchronously when isInitialLoad is true but
// is otherwise deferred to the next frame. A resize storm thus costs at
// most one write-back per frame, not one per event.
func (e *Engine) Query(nodes []*html.Node, isInitialLoad bool) {
	if nodes != nil {
		e.writeBack(e.measurePass(nodes))
		return
	}
	snap := e.measurePass(e.nodes)
	e.current = snap
	if isInitialLoad {
		e.writeBack(snap)
		return
	}
	e.sched.Request(func() {
		e.writeBack(snap)
	})
}

// Close cancels any pending deferred write-back.
func (e *Engine) Close() {
	e.sched.Cancel()
}

// measurePass reads the width and breakpoint configuration of every
// node into a fresh snapshot. An unusable configuration degrades that
// one element to the empty table, it never stops the batch.
func (e *Engine) measurePass(nodes []*html.Node) snapshot {
	snap := snapshot{
		nodes:  nodes,
		widths: make([]float64, len(nodes)),
		tables: make([]breakpoint.Table, len(nodes)),
	}
	for i, n := range nodes {
		snap.widths[i] = e.meter.Width(n)
		config, _ := dom.Attr(n, e.configAttr)
		table, err := breakpoint.Parse(config)
		if err != nil {
			tracer().P("element", dom.NodeName(n)).Infof("element degrades to no state: %v", err)
			table = nil
		}
		snap.tables[i] = table
	}
	return snap
}

// writeBack resolves every measured element and applies the outcome:
// the state attribute is set to the resolved name, or removed entirely
// for no state. Re-applying an unchanged snapshot is idempotent.
func (e *Engine) writeBack(snap snapshot) {
	for i, n := range snap.nodes {
		var name string
		switch m := breakpoint.Resolve(snap.widths[i], snap.tables[i]).Match(); m {
		case m.Some(&name):
			dom.SetAttr(n, e.stateAttr, name)
		case m.None():
			dom.RemoveAttr(n, e.stateAttr)
		}
	}
}
