package errors

import "math"

// MaxCanvasSide bounds either canvas dimension in pixels.
const MaxCanvasSide = 16384

// ValidateFinite rejects NaN and infinite values. The chart engine does
// not check its inputs, so every value entering it passes through here.
//
// what names the value in the error message, e.g. `series "p50" x`.
func ValidateFinite(what string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) {
			return New(ErrCodeInvalidRange, "%s[%d] is NaN", what, i)
		}
		if math.IsInf(v, 0) {
			return New(ErrCodeInvalidRange, "%s[%d] is infinite", what, i)
		}
	}
	return nil
}

// ValidateDimensions checks a canvas size.
//
// Validation rules:
//   - Both sides must be positive
//   - Neither side may exceed MaxCanvasSide
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "canvas must be positive, got %dx%d", width, height)
	}
	if width > MaxCanvasSide || height > MaxCanvasSide {
		return New(ErrCodeInvalidDimensions, "canvas %dx%d exceeds %d pixels per side", width, height, MaxCanvasSide)
	}
	return nil
}

// ValidateMinMax checks a single extent pair before it reaches an axis.
func ValidateMinMax(what string, min, max float64) error {
	if err := ValidateFinite(what, min, max); err != nil {
		return err
	}
	if min > max {
		return New(ErrCodeInvalidRange, "%s: min %g is greater than max %g", what, min, max)
	}
	return nil
}
