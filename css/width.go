package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	widthNone uint32 = 0

	widthAbsolute uint32 = 0x0001
	widthAuto     uint32 = 0x0002
	widthInitial  uint32 = 0x0003
	kindMask      uint32 = 0x000f

	widthPercent uint32 = 0x0100
)

// PxUnit is one CSS pixel in device units (1px = ¾pt).
const PxUnit = dimen.PT * 3 / 4

// WidthT is an option type for CSS width declarations, as far as element
// queries care about them: a fixed dimension, a percentage of the
// containing block, or auto.
type WidthT struct {
	d       dimen.DU
	percent float64
	flags   uint32
}

/*
type WidthT
	= Auto
	| Initial
	| JustWidth dimen
	| Percentage float
*/

func Auto() WidthT {
	return WidthT{flags: widthAuto}
}

func Initial() WidthT {
	return WidthT{flags: widthInitial}
}

// JustWidth creates a width with a fixed value of x.
func JustWidth(x dimen.DU) WidthT {
	return WidthT{d: x, flags: widthAbsolute}
}

// Px creates a fixed width of w CSS pixels.
func Px(w float64) WidthT {
	return JustWidth(dimen.DU(w * float64(PxUnit)))
}

// Percentage creates a width relative to the containing block, with p
// given in percent (50 rather than 0.5).
func Percentage(p float64) WidthT {
	return WidthT{percent: p, flags: widthAuto | widthPercent}
}

// ParseWidth parses a CSS width declaration value, leniently. Understood
// are "auto", bare numbers, and the px, pt and % units; anything else
// degrades to Auto rather than erroring, since an unusable declaration
// simply does not constrain the element.
func ParseWidth(value string) WidthT {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "", "auto", "inherit":
		return Auto()
	case "initial":
		return Initial()
	}
	number, unit, ok := splitNumeric(value)
	if !ok {
		return Auto()
	}
	switch unit {
	case "%":
		return Percentage(number)
	case "", "px":
		return Px(number)
	case "pt":
		return JustWidth(dimen.DU(number * float64(dimen.PT)))
	}
	return Auto()
}

// splitNumeric splits a declaration value into its numeric prefix and the
// trimmed remainder ("420px" => 420, "px").
func splitNumeric(value string) (float64, string, bool) {
	i := 0
	if i < len(value) && (value[i] == '+' || value[i] == '-') {
		i++
	}
	for i < len(value) && (value[i] >= '0' && value[i] <= '9' || value[i] == '.') {
		i++
	}
	number, err := strconv.ParseFloat(value[:i], 64)
	if err != nil {
		return 0, "", false
	}
	return number, strings.TrimSpace(value[i:]), true
}

// ---------------------------------------------------------------------------

func (w WidthT) Match() *Matcher {
	return &Matcher{width: w}
}

type Matcher struct {
	width WidthT
}

func (m *Matcher) IsKind(w WidthT) *Matcher {
	if (m.width.flags&widthPercent > 0) != (w.flags&widthPercent > 0) {
		return nil
	}
	if (m.width.flags & kindMask) == (w.flags & kindMask) {
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.width.flags&kindMask == widthAbsolute {
		if du != nil {
			*du = m.width.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.width.flags&widthPercent > 0 {
		if p != nil {
			*p = m.width.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type WidthPatterns[T any] struct {
	Auto    T
	Initial T
	Just    T
	Percent T
	Default T
}

func WidthPattern[T any](w WidthT) *MatchExpr[T] {
	return &MatchExpr[T]{width: w}
}

type MatchExpr[T any] struct {
	width WidthT
}

func (m *MatchExpr[T]) OneOf(patterns WidthPatterns[T]) T {
	switch {
	case m.width.flags&widthPercent > 0:
		return patterns.Percent
	case m.width.flags&kindMask == widthAbsolute:
		return patterns.Just
	case m.width.flags&kindMask == widthAuto:
		return patterns.Auto
	case m.width.flags&kindMask == widthInitial:
		return patterns.Initial
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.width.d
	return m
}

func (m *MatchExpr[T]) WithPercent(p *float64) *MatchExpr[T] {
	*p = m.width.percent
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
