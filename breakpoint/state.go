package breakpoint

// State is the outcome of resolving a width against a breakpoint table:
// either the name of a breakpoint, or no state at all. It is an explicit
// option type so that "no state" cannot be confused with an empty name.
type State interface {
	Match() Matcher
	WithDefault(string) string
}

type state struct {
	name string
	tag  bool
}

// StateOf wraps a breakpoint name into a State.
func StateOf(name string) State {
	return state{name: name, tag: true}
}

// NoState is the absence of any breakpoint state.
func NoState() State {
	return state{tag: false}
}

func (s state) Match() Matcher {
	return matcher{s: s}
}

// WithDefault returns the state's name, or def for NoState.
func (s state) WithDefault(def string) string {
	if s.tag {
		return s.name
	}
	return def
}

// --- Matching --------------------------------------------------------------

type Matcher interface {
	Some(*string) Matcher
	None() Matcher
}

type matcher struct {
	s state
}

func (sm matcher) Some(name *string) Matcher {
	if sm.s.tag {
		*name = sm.s.name
		return sm
	}
	return nil
}

func (sm matcher) None() Matcher {
	if !sm.s.tag {
		return sm
	}
	return nil
}
