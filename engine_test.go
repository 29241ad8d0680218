package elq

import (
	"strings"
	"testing"

	"github.com/npillmayer/elq/dom"
	"github.com/npillmayer/elq/frame"
	"github.com/npillmayer/elq/measure"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// stubScheduler captures the deferred callback instead of running it, so
// tests control the "frame boundary" explicitly.
type stubScheduler struct {
	pending func()
}

func (s *stubScheduler) Request(callback func()) { s.pending = callback }
func (s *stubScheduler) Cancel()                 { s.pending = nil }

func (s *stubScheduler) fire() {
	if s.pending != nil {
		cb := s.pending
		s.pending = nil
		cb()
	}
}

func parsePage(t *testing.T, page string) *dom.Document {
	t.Helper()
	doc, err := dom.FromHTML(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func stateOf(t *testing.T, doc *dom.Document, id string) (string, bool) {
	t.Helper()
	nodes, err := doc.QueryAll("#" + id)
	require.NoError(t, err)
	require.Len(t, nodes, 1, "expected exactly one #%s", id)
	return dom.Attr(nodes[0], DefaultStateAttribute)
}

func TestInitialLoadAnnotates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<html><body>
	  <div id="a" width="500" data-eq-pts="small:0, medium:400, large:800"></div>
	  <div id="b" width="399" data-eq-pts="small:0, medium:400, large:800"></div>
	  <div id="c" width="120" data-eq-pts="wide:200"></div>
	</body></html>`)
	e := New(doc, WithScheduler(frame.Synchronous{}))
	n, err := e.RefreshNodes()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	e.Query(nil, true)

	if state, ok := stateOf(t, doc, "a"); !ok || state != "medium" {
		t.Errorf("#a: expected state 'medium', got %q (ok=%v)", state, ok)
	}
	if state, ok := stateOf(t, doc, "b"); !ok || state != "small" {
		t.Errorf("#b: expected state 'small', got %q (ok=%v)", state, ok)
	}
	if state, ok := stateOf(t, doc, "c"); ok {
		t.Errorf("#c: expected no state below every threshold, got %q", state)
	}
}

func TestResizeCycleDefersWriteBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<div id="a" data-eq-pts="thin:100, fat:300"></div>`)
	widths := measure.Fixed{Default: 150}
	sched := &stubScheduler{}
	e := New(doc, WithMeasurer(widths), WithScheduler(sched))
	_, err := e.RefreshNodes()
	require.NoError(t, err)

	e.Query(nil, false)
	if state, ok := stateOf(t, doc, "a"); ok {
		t.Fatalf("expected write-back to be deferred, already got state %q", state)
	}
	sched.fire()
	if state, ok := stateOf(t, doc, "a"); !ok || state != "thin" {
		t.Errorf("expected state 'thin' after the frame fired, got %q (ok=%v)", state, ok)
	}
}

func TestDeferredWriteBackUsesItsOwnSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<div id="a" width="500" data-eq-pts="thin:100, fat:300"></div>`)
	sched := &stubScheduler{}
	e := New(doc, WithScheduler(sched))
	_, err := e.RefreshNodes()
	require.NoError(t, err)

	e.Query(nil, false)
	// the registry moves on before the frame fires
	_, err = e.RefreshNodes()
	require.NoError(t, err)
	sched.fire()
	if state, ok := stateOf(t, doc, "a"); !ok || state != "fat" {
		t.Errorf("expected the captured snapshot to be written, got %q (ok=%v)", state, ok)
	}
}

func TestExplicitNodesBypassRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<html><body>
	  <div id="a" width="500" data-eq-pts="thin:100, fat:300"></div>
	  <div id="b" width="500" data-eq-pts="thin:100, fat:300"></div>
	</body></html>`)
	sched := &stubScheduler{}
	e := New(doc, WithScheduler(sched))
	// no RefreshNodes: the ad hoc path needs no registry
	nodes, err := doc.QueryAll("#b")
	require.NoError(t, err)

	e.Query(nodes, false)

	if sched.pending != nil {
		t.Error("expected the explicit-node path to write synchronously")
	}
	if state, ok := stateOf(t, doc, "b"); !ok || state != "fat" {
		t.Errorf("#b: expected state 'fat', got %q (ok=%v)", state, ok)
	}
	if state, ok := stateOf(t, doc, "a"); ok {
		t.Errorf("#a: expected untouched sibling, got state %q", state)
	}
}

func TestRefreshReplacesRegistryWholesale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<html><body>
	  <div id="a" width="500" data-eq-pts="thin:100"></div>
	  <div id="b" width="500" data-eq-pts="thin:100"></div>
	</body></html>`)
	e := New(doc, WithScheduler(frame.Synchronous{}))
	n, err := e.RefreshNodes()
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 2, e.current.size())

	// #a opts out of management; the next scan must not keep it around
	nodes, err := doc.QueryAll("#a")
	require.NoError(t, err)
	dom.RemoveAttr(nodes[0], DefaultConfigAttribute)

	n, err = e.RefreshNodes()
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, e.current.size())
	if dom.NodeName(e.nodes[0]) != "div" {
		t.Fatalf("expected a div under management, got %s", dom.NodeName(e.nodes[0]))
	}
	if id, _ := dom.Attr(e.nodes[0], "id"); id != "b" {
		t.Errorf("expected only #b to stay managed, got #%s", id)
	}

	e.Query(nil, true)
	if state, ok := stateOf(t, doc, "a"); ok {
		t.Errorf("#a: expected no write-back for an unmanaged element, got %q", state)
	}
	if state, ok := stateOf(t, doc, "b"); !ok || state != "thin" {
		t.Errorf("#b: expected state 'thin', got %q (ok=%v)", state, ok)
	}
}

func TestManagedReturnsACopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<div id="a" width="500" data-eq-pts="thin:100"></div>`)
	e := New(doc, WithScheduler(frame.Synchronous{}))
	_, err := e.RefreshNodes()
	require.NoError(t, err)

	managed := e.Managed()
	require.Len(t, managed, 1)
	managed[0] = nil // caller-side damage must stay caller-side

	if e.nodes[0] == nil {
		t.Fatal("expected the registry to be unaffected by mutation of the returned slice")
	}
	e.Query(nil, true)
	if state, ok := stateOf(t, doc, "a"); !ok || state != "thin" {
		t.Errorf("expected state 'thin' from the intact registry, got %q (ok=%v)", state, ok)
	}
}

func TestRefreshWithZeroMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<p>nothing to manage here</p>`)
	e := New(doc, WithScheduler(frame.Synchronous{}))
	n, err := e.RefreshNodes()
	require.NoError(t, err)
	require.Equal(t, 0, n)
	e.Query(nil, true) // empty working set, no writes, no error
}

func TestBrokenConfigDegradesOnlyItself(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<html><body>
	  <div id="bad" width="500" data-eq-pts="no thresholds at all"></div>
	  <div id="good" width="500" data-eq-pts="thin:100"></div>
	</body></html>`)
	e := New(doc, WithScheduler(frame.Synchronous{}))
	_, err := e.RefreshNodes()
	require.NoError(t, err)
	e.Query(nil, true)

	if state, ok := stateOf(t, doc, "bad"); ok {
		t.Errorf("#bad: expected silent degradation to no state, got %q", state)
	}
	if state, ok := stateOf(t, doc, "good"); !ok || state != "thin" {
		t.Errorf("#good: expected state 'thin', got %q (ok=%v)", state, ok)
	}
}

func TestWriteBackIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<div id="a" width="250" data-eq-pts="thin:100, fat:300"></div>`)
	e := New(doc, WithScheduler(frame.Synchronous{}))
	_, err := e.RefreshNodes()
	require.NoError(t, err)

	e.Query(nil, true)
	first := html.Attribute{}
	nodes, _ := doc.QueryAll("#a")
	for _, a := range nodes[0].Attr {
		if a.Key == DefaultStateAttribute {
			first = a
		}
	}
	e.Query(nil, true)
	count := 0
	for _, a := range nodes[0].Attr {
		if a.Key == DefaultStateAttribute {
			count++
			if a != first {
				t.Errorf("expected unchanged attribute %v, got %v", first, a)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one state attribute, got %d", count)
	}
}

func TestCustomAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<div id="a" width="500" eq-pts="thin:100"></div>`)
	e := New(doc,
		WithScheduler(frame.Synchronous{}),
		WithConfigAttribute("eq-pts"),
		WithStateAttribute("eq-state"))
	n, err := e.RefreshNodes()
	require.NoError(t, err)
	require.Equal(t, 1, n)
	e.Query(nil, true)

	nodes, _ := doc.QueryAll("#a")
	if state, ok := dom.Attr(nodes[0], "eq-state"); !ok || state != "thin" {
		t.Errorf("expected custom state attribute 'thin', got %q (ok=%v)", state, ok)
	}
}

func TestStateAttributeRemovedWhenElementShrinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elq.engine")
	defer teardown()
	//
	doc := parsePage(t, `<div id="a" data-eq-pts="wide:300"></div>`)
	widths := measure.Fixed{Default: 400}
	e := New(doc, WithMeasurer(&widths), WithScheduler(frame.Synchronous{}))
	_, err := e.RefreshNodes()
	require.NoError(t, err)
	e.Query(nil, true)
	if state, ok := stateOf(t, doc, "a"); !ok || state != "wide" {
		t.Fatalf("expected state 'wide', got %q (ok=%v)", state, ok)
	}

	widths.Default = 100 // the element shrank below every threshold
	e.Query(nil, true)
	if state, ok := stateOf(t, doc, "a"); ok {
		t.Errorf("expected the state attribute to be removed, got %q", state)
	}
}
