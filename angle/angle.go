// Package angle provides normalized angles and circular ranges over [0, 2π).
package angle

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// TwoPi is one full turn in radians.
	TwoPi = 2 * math.Pi

	// Tolerance is the relative tolerance used by Equal.
	Tolerance = 1e-9

	// Precision is the number of decimals used by String.
	Precision = 4
)

// Angle is an angle in radians. The raw value is kept as given; comparisons
// use the normalized value in [0, 2π) while arithmetic uses the raw value.
type Angle struct {
	radians float64
}

// Option selects the source of an angle passed to New.
type Option func(*source)

type source struct {
	radians *float64
	degrees *float64
}

// WithRadians makes New use r radians.
func WithRadians(r float64) Option {
	return func(s *source) { s.radians = &r }
}

// WithDegrees makes New use d degrees.
func WithDegrees(d float64) Option {
	return func(s *source) { s.degrees = &d }
}

// New creates an angle. Radians win over degrees, and degrees win over the
// positional value, which is taken as radians.
func New(value float64, opts ...Option) Angle {
	var s source
	for _, opt := range opts {
		opt(&s)
	}
	switch {
	case s.radians != nil:
		return Angle{*s.radians}
	case s.degrees != nil:
		return FromDegrees(*s.degrees)
	}
	return Angle{value}
}

// FromRadians creates an angle from radians.
func FromRadians(r float64) Angle {
	return Angle{r}
}

// FromDegrees creates an angle from degrees.
func FromDegrees(d float64) Angle {
	return Angle{d * math.Pi / 180}
}

// Normalized returns the angle wrapped into [0, 2π).
func (a Angle) Normalized() float64 {
	n := math.Mod(a.radians, TwoPi)
	if n < 0 {
		n += TwoPi
	}
	// Tiny negative remainders round up to exactly 2π.
	if n >= TwoPi || n == 0 {
		return 0
	}
	return n
}

// Equal reports whether the normalized values are relatively close.
func (a Angle) Equal(b Angle) bool {
	return a.EqualWithin(b, Tolerance)
}

// EqualWithin is Equal with a caller-chosen relative tolerance.
func (a Angle) EqualWithin(b Angle, tol float64) bool {
	return scalar.EqualWithinRel(a.Normalized(), b.Normalized(), tol)
}

// Compare returns -1, 0 or +1 ordering a and b by normalized value.
func (a Angle) Compare(b Angle) int {
	an, bn := a.Normalized(), b.Normalized()
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}
	return 0
}

// Less reports whether a normalizes below b.
func (a Angle) Less(b Angle) bool {
	return a.Normalized() < b.Normalized()
}

// LessOrEqual reports whether a normalizes to at most b.
func (a Angle) LessOrEqual(b Angle) bool {
	return a.Normalized() <= b.Normalized()
}

// Greater reports whether a normalizes above b.
func (a Angle) Greater(b Angle) bool {
	return a.Normalized() > b.Normalized()
}

// GreaterOrEqual reports whether a normalizes to at least b.
func (a Angle) GreaterOrEqual(b Angle) bool {
	return a.Normalized() >= b.Normalized()
}

// Add returns the raw sum in radians. The result is not an Angle.
func (a Angle) Add(b Angle) float64 {
	return a.radians + b.radians
}

// AddRadians returns the raw radians plus r.
func (a Angle) AddRadians(r float64) float64 {
	return a.radians + r
}

// Sub returns the raw difference in radians. The result is not an Angle.
func (a Angle) Sub(b Angle) float64 {
	return a.radians - b.radians
}

// SubRadians returns the raw radians minus r.
func (a Angle) SubRadians(r float64) float64 {
	return a.radians - r
}

// Mul returns the raw radians scaled by s.
func (a Angle) Mul(s float64) float64 {
	return a.radians * s
}

// Div returns the raw radians divided by s.
func (a Angle) Div(s float64) float64 {
	return a.radians / s
}

// Radians returns the raw value in radians.
func (a Angle) Radians() float64 {
	return a.radians
}

// Degrees returns the raw value in degrees.
func (a Angle) Degrees() float64 {
	return a.radians * 180 / math.Pi
}

// Float returns the raw value in radians.
func (a Angle) Float() float64 {
	return a.radians
}

// Int truncates the raw value in radians toward zero.
func (a Angle) Int() int {
	return int(a.radians)
}

// Render renders the raw radians with prec decimals.
func (a Angle) Render(prec int) string {
	return strconv.FormatFloat(a.radians, 'f', prec, 64)
}

func (a Angle) String() string {
	return a.Render(Precision)
}

// GoString renders an expression that rebuilds the angle exactly.
func (a Angle) GoString() string {
	return "angle.FromRadians(" + strconv.FormatFloat(a.radians, 'g', -1, 64) + ")"
}
