// Package units provides the numeric range helpers shared by every channel
// kind: clamping to the signed and unsigned unit intervals, hue wrapping,
// and decimal rounding for sensor voltages.
package units

import "math"

// ClampSigned clamps v to [-1, 1]. The second return reports whether the
// input was out of range, so callers can surface a diagnostic without the
// helper owning a logger.
func ClampSigned(v float64) (float64, bool) {
	if v < -1.0 {
		return -1.0, true
	}
	if v > 1.0 {
		return 1.0, true
	}
	return v, false
}

// ClampUnsigned clamps v to [0, 1].
func ClampUnsigned(v float64) (float64, bool) {
	if v < 0.0 {
		return 0.0, true
	}
	if v > 1.0 {
		return 1.0, true
	}
	return v, false
}

// ClampLower clamps v below at 0 and leaves it unbounded above. Used for
// quantities like gamma and saturation exponent that have no natural upper
// limit.
func ClampLower(v float64) (float64, bool) {
	if v < 0.0 {
		return 0.0, true
	}
	return v, false
}

// WrapUnit wraps v into [0, 1). Negative inputs wrap upward, so -0.25
// becomes 0.75.
func WrapUnit(v float64) float64 {
	w := math.Mod(v, 1.0)
	if w < 0 {
		w += 1.0
	}
	return w
}

// Round rounds v half away from zero to the given number of decimal digits.
func Round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
