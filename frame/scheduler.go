package frame

import (
	"sync"
	"time"
)

// Scheduler invokes a callback at the next paint opportunity.
//
// The coalescing contract: at most one callback fires per frame, no
// matter how often Request was called within that frame. A later Request
// within the same frame replaces the pending callback rather than
// queueing a second fire. Cancel drops any pending callback.
type Scheduler interface {
	Request(callback func())
	Cancel()
}

// DefaultInterval approximates one frame at 60fps.
const DefaultInterval = 16 * time.Millisecond

// Ticker is a timer-based Scheduler with at-most-once-per-interval
// semantics. Unlike a debouncer it does not push the deadline back on
// repeated requests: the first request of a frame arms the timer, later
// requests merely swap the callback.
type Ticker struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	seq      uint64
}

// NewTicker creates a Ticker. An interval of 0 selects DefaultInterval.
func NewTicker(interval time.Duration) *Ticker {
	if interval == 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval}
}

// Request schedules callback for the end of the current frame interval.
func (t *Ticker) Request(callback func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.callback = callback
	if t.timer != nil { // a frame is already pending
		tracer().Debugf("frame request coalesced into pending frame")
		return
	}
	t.seq++
	seq := t.seq
	t.timer = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		// Run only if this timer is still the current one. Guards against
		// a fire racing with Cancel, where Stop() may return false because
		// the timer already went off.
		if seq != t.seq {
			t.mu.Unlock()
			return
		}
		cb := t.callback
		t.callback = nil
		t.timer = nil
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	})
}

// Cancel drops the pending callback, if any.
func (t *Ticker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.callback = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Interval returns the frame interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Synchronous is a Scheduler that invokes callbacks immediately. It
// trades the batching of writes for determinism, which is what one-shot
// document processing and tests want.
type Synchronous struct{}

func (Synchronous) Request(callback func()) {
	callback()
}

func (Synchronous) Cancel() {}

var _ Scheduler = &Ticker{}
var _ Scheduler = Synchronous{}
