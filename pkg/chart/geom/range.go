package geom

import "math"

// Range is the data extent of one axis. The zero value is not usable;
// start from [EmptyRange].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EmptyRange returns the {+Inf, -Inf} sentinel that any AddMinMax widens.
func EmptyRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// AddMinMax widens r so that it covers [min, max]. It never narrows.
// NaN arguments are not checked and poison the range.
func (r *Range) AddMinMax(min, max float64) {
	if min < r.Min || math.IsNaN(min) {
		r.Min = min
	}
	if max > r.Max || math.IsNaN(max) {
		r.Max = max
	}
}

// IsEmpty reports whether no extent has been added yet.
func (r Range) IsEmpty() bool { return r.Min > r.Max }

// Span returns Max-Min, or 0 for an empty range.
func (r Range) Span() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max - r.Min
}

// IsFinite reports whether both bounds are finite numbers.
func (r Range) IsFinite() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}
