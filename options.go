package elq

import (
	"github.com/npillmayer/elq/frame"
	"github.com/npillmayer/elq/measure"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMeasurer selects the width source, i.e. the layout-engine
// collaborator.
func WithMeasurer(m measure.Measurer) Option {
	return func(e *Engine) {
		e.meter = m
	}
}

// WithScheduler selects the frame scheduler used for deferred
// write-backs. frame.Synchronous{} turns deferral off.
func WithScheduler(s frame.Scheduler) Option {
	return func(e *Engine) {
		e.sched = s
	}
}

// WithConfigAttribute renames the attribute holding an element's
// breakpoint configuration. Its presence is the sole selection
// criterion of the registry scan.
func WithConfigAttribute(attr string) Option {
	return func(e *Engine) {
		e.configAttr = attr
	}
}

// WithStateAttribute renames the attribute receiving the resolved state.
func WithStateAttribute(attr string) Option {
	return func(e *Engine) {
		e.stateAttr = attr
	}
}
