package common

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]. When hi < lo the result is lo.
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// MinMax returns a and b in ascending order.
func MinMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
