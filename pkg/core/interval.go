package core

import "math"

// Interval represents a closed range [Min, Max] on the real line. The
// zero value is not a valid interval; use Empty() or NewInterval.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval [min, max].
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Empty returns an interval that contains no values.
func Empty() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Universe returns an interval that contains every value.
func Universe() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Size returns the width of the interval.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies within the closed interval.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies within the open interval.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp restricts x to the interval's bounds.
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval padded symmetrically by delta/2 on each
// side, so its size grows by delta.
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Union returns the smallest interval containing both i and other.
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}
