package math

import gomath "math"

// Maximum calculates the maximum value among two numbers
func Maximum(a float64, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

//Minimum calculates the minimum value among two numbers
func Minimum(a float64, b float64) float64 {
	if a > b {
		return b
	}
	return a
}

// Ticks returns every multiple of step lying in [min, max]
// a non-positive step or an inverted range yields no ticks
func Ticks(min, max, step float64) []float64 {
	if step <= 0 || max < min || gomath.IsInf(max-min, 0) || gomath.IsNaN(max-min) {
		return nil
	}
	first := gomath.Ceil(min/step) * step
	var ticks []float64
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > max {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// IsFinite reports whether v is neither NaN nor an infinity
func IsFinite(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}
