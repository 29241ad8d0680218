package breakpoint

// Resolve maps a measured width to the state of the highest threshold the
// width has reached within table. Intervals are closed-open: a width
// exactly equal to a threshold belongs to that threshold's state. Widths
// below the smallest threshold, and any width against an empty table,
// resolve to NoState. Widths at or above the largest threshold stay in
// the largest state no matter how far they grow.
//
// Resolve is pure and never mutates table; the same (width, table) pair
// always resolves to the same state.
func Resolve(width float64, table Table) State {
	if len(table) == 0 {
		return NoState()
	}
	first, last := table[0], table[len(table)-1]
	if width < first.Threshold {
		return NoState()
	}
	if width >= last.Threshold {
		return StateOf(last.Name)
	}
	for i := 0; i < len(table)-1; i++ {
		cur, next := table[i], table[i+1]
		if width >= cur.Threshold && width < next.Threshold {
			return StateOf(cur.Name)
		}
	}
	// not reached: the checks above cover every interval
	return NoState()
}
