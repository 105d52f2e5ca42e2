package angle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is a directed arc from Start to End, traversed in the increasing
// angle direction. When End normalizes below Start the arc wraps through 0.
// Each endpoint is independently inclusive or exclusive.
type Range struct {
	start          Angle
	end            Angle
	startInclusive bool
	endInclusive   bool
}

// NewRange creates a range with explicit boundary flags.
func NewRange(start, end Angle, startInclusive, endInclusive bool) Range {
	return Range{
		start:          start,
		end:            end,
		startInclusive: startInclusive,
		endInclusive:   endInclusive,
	}
}

// Closed creates a range with both endpoints inclusive.
func Closed(start, end Angle) Range {
	return NewRange(start, end, true, true)
}

// RangeOf creates a range from endpoints given as Angle or numeric radians.
func RangeOf(start, end any, startInclusive, endInclusive bool) (Range, error) {
	s, err := Coerce(start)
	if err != nil {
		return Range{}, fmt.Errorf("range start: %w", err)
	}
	e, err := Coerce(end)
	if err != nil {
		return Range{}, fmt.Errorf("range end: %w", err)
	}
	return NewRange(s, e, startInclusive, endInclusive), nil
}

func (r Range) Start() Angle { return r.start }
func (r Range) End() Angle { return r.end }
func (r Range) StartInclusive() bool { return r.startInclusive }
func (r Range) EndInclusive() bool { return r.endInclusive }

// fullTurn reports whether the endpoints normalize to the same angle and the
// end lies a whole number of turns after the start, as in 0 .. 2π. A reversed
// pair such as 2π .. 0 is an empty arc.
func (r Range) fullTurn() bool {
	return r.start.Equal(r.end) && r.end.radians-r.start.radians > math.Pi
}

// Length returns the arc length in radians, in [0, 2π].
func (r Range) Length() float64 {
	if r.fullTurn() {
		return TwoPi
	}
	s, e := r.start.Normalized(), r.end.Normalized()
	if e >= s {
		return e - s
	}
	return (TwoPi - s) + e
}

// Contains reports whether p lies on the arc. A point equal to an endpoint
// is inside only if that endpoint is inclusive.
func (r Range) Contains(p Angle) bool {
	onStart, onEnd := p.Equal(r.start), p.Equal(r.end)
	if onStart || onEnd {
		return (onStart && r.startInclusive) || (onEnd && r.endInclusive)
	}
	if r.fullTurn() {
		return true
	}

	s, e, n := r.start.Normalized(), r.end.Normalized(), p.Normalized()
	if s <= e {
		return s < n && n < e
	}
	// Wrapping: the union of [s, 2π) and [0, e].
	return n > s || n < e
}

// ContainsRadians is Contains for a raw radian value.
func (r Range) ContainsRadians(rad float64) bool {
	return r.Contains(FromRadians(rad))
}

// ContainsRange reports whether both endpoints of o lie on r. When both
// ranges wrap this is not an exact subset test.
func (r Range) ContainsRange(o Range) bool {
	return r.Contains(o.start) && r.Contains(o.end)
}

// ContainsItem accepts a Range, an Angle or numeric radians. Any other
// value is reported as not contained.
func (r Range) ContainsItem(v any) bool {
	if o, ok := v.(Range); ok {
		return r.ContainsRange(o)
	}
	p, err := Coerce(v)
	if err != nil {
		return false
	}
	return r.Contains(p)
}

func (r Range) canMerge(o Range) bool {
	return r.Contains(o.start) || r.Contains(o.end) ||
		o.Contains(r.start) || o.Contains(r.end)
}

// Union merges r and o when they overlap or touch, returning one closed range
// that runs from the smaller start to the larger end by normalized value.
// Otherwise both ranges are returned unchanged. The min/max merge does not
// model every wraparound geometry.
func (r Range) Union(o Range) []Range {
	if !r.canMerge(o) {
		return []Range{r, o}
	}

	start, end := r.start, r.end
	if o.start.Less(start) {
		start = o.start
	}
	if o.end.Greater(end) {
		end = o.end
	}
	return []Range{Closed(start, end)}
}

// Difference removes o from r when o lies within r, splitting r in two.
// The boundaries facing o take the opposite inclusivity of o's endpoints and
// the outer boundaries are inclusive. Partial overlaps are not handled and
// return r unchanged.
func (r Range) Difference(o Range) []Range {
	if !r.ContainsRange(o) {
		return []Range{r}
	}
	return []Range{
		NewRange(r.start, o.start, true, !o.startInclusive),
		NewRange(o.end, r.end, !o.endInclusive, true),
	}
}

// Equal reports whether both endpoints and both flags match.
func (r Range) Equal(o Range) bool {
	return r.EqualWithin(o, Tolerance)
}

// EqualWithin is Equal with a caller-chosen relative tolerance.
func (r Range) EqualWithin(o Range, tol float64) bool {
	return r.start.EqualWithin(o.start, tol) &&
		r.end.EqualWithin(o.end, tol) &&
		r.startInclusive == o.startInclusive &&
		r.endInclusive == o.endInclusive
}

// Render renders the range as "[s - e)" with prec decimals per endpoint.
func (r Range) Render(prec int) string {
	var b strings.Builder
	if r.startInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(r.start.Render(prec))
	b.WriteString(" - ")
	b.WriteString(r.end.Render(prec))
	if r.endInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

func (r Range) String() string {
	return r.Render(Precision)
}

// GoString renders an expression that rebuilds the range exactly.
func (r Range) GoString() string {
	return "angle.NewRange(" + r.start.GoString() + ", " + r.end.GoString() + ", " +
		strconv.FormatBool(r.startInclusive) + ", " + strconv.FormatBool(r.endInclusive) + ")"
}
