package angle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrTypeMismatch is returned when a value cannot be used as an angle.
	ErrTypeMismatch = errors.New("angle: type mismatch")

	// ErrSyntax is returned when text cannot be parsed as an angle or range.
	ErrSyntax = errors.New("angle: invalid syntax")
)

// Number is any value that can be read as radians.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromNumber creates an angle from a number of radians.
func FromNumber[T Number](v T) Angle {
	return Angle{float64(v)}
}

// Coerce converts an Angle or a numeric value in radians to an Angle.
func Coerce(v any) (Angle, error) {
	switch x := v.(type) {
	case Angle:
		return x, nil
	case *Angle:
		if x == nil {
			return Angle{}, fmt.Errorf("%w: nil *Angle", ErrTypeMismatch)
		}
		return *x, nil
	case float64:
		return FromNumber(x), nil
	case float32:
		return FromNumber(x), nil
	case int:
		return FromNumber(x), nil
	case int8:
		return FromNumber(x), nil
	case int16:
		return FromNumber(x), nil
	case int32:
		return FromNumber(x), nil
	case int64:
		return FromNumber(x), nil
	case uint:
		return FromNumber(x), nil
	case uint8:
		return FromNumber(x), nil
	case uint16:
		return FromNumber(x), nil
	case uint32:
		return FromNumber(x), nil
	case uint64:
		return FromNumber(x), nil
	case uintptr:
		return FromNumber(x), nil
	}
	return Angle{}, fmt.Errorf("%w: cannot use %T as an angle", ErrTypeMismatch, v)
}

// ParseAngle parses radians, or degrees when the text ends in "deg" or "°".
func ParseAngle(s string) (Angle, error) {
	text := strings.TrimSpace(s)
	degrees := false
	for _, suffix := range []string{"deg", "°"} {
		if strings.HasSuffix(text, suffix) {
			text = strings.TrimSpace(strings.TrimSuffix(text, suffix))
			degrees = true
			break
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Angle{}, fmt.Errorf("%w: angle %q", ErrSyntax, s)
	}
	if degrees {
		return FromDegrees(v), nil
	}
	return FromRadians(v), nil
}

// ParseRange parses the rendering produced by Range.String, such as
// "[0.0000 - 3.1416)". Endpoints may use any precision and the degree
// suffixes accepted by ParseAngle.
func ParseRange(s string) (Range, error) {
	text := strings.TrimSpace(s)
	if len(text) < 2 {
		return Range{}, fmt.Errorf("%w: range %q", ErrSyntax, s)
	}

	var startInclusive, endInclusive bool
	switch text[0] {
	case '[':
		startInclusive = true
	case '(':
	default:
		return Range{}, fmt.Errorf("%w: range %q: missing opening bracket", ErrSyntax, s)
	}
	switch text[len(text)-1] {
	case ']':
		endInclusive = true
	case ')':
	default:
		return Range{}, fmt.Errorf("%w: range %q: missing closing bracket", ErrSyntax, s)
	}

	// The separator is " - " so negative endpoints stay unambiguous.
	startText, endText, ok := strings.Cut(text[1:len(text)-1], " - ")
	if !ok {
		return Range{}, fmt.Errorf("%w: range %q: missing separator", ErrSyntax, s)
	}
	start, err := ParseAngle(startText)
	if err != nil {
		return Range{}, fmt.Errorf("parsing range start: %w", err)
	}
	end, err := ParseAngle(endText)
	if err != nil {
		return Range{}, fmt.Errorf("parsing range end: %w", err)
	}
	return NewRange(start, end, startInclusive, endInclusive), nil
}
