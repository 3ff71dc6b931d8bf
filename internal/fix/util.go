package fix

// Clamp limits f to [lo, hi]. Clamping to [Min, Max] is the identity.
func (f Fixed) Clamp(lo, hi Fixed) Fixed {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Interpolate maps x through the line defined by (x1, y1) and (x2, y2):
// y1 + (x-x1)·(y2-y1)/(x2-x1). Both interpolation and extrapolation are
// supported. The delta product and the slope division are fused in 64 bits,
// so no intermediate rounding happens and x = x2 lands exactly on y2 for
// every non-degenerate pair of points. When x1 == x2 the division saturates
// toward Min or Max by the sign of the numerator, so the result is a pinned
// extrapolation rather than an error; callers that need a defined value
// should not collapse the interval.
func Interpolate(x, x1, y1, x2, y2 Fixed) Fixed {
	dx := int64(x2.Sub(x1))
	num := int64(x.Sub(x1)) * int64(y2.Sub(y1))
	if dx == 0 {
		if num < 0 {
			return y1.Add(Min)
		}
		return y1.Add(Max)
	}
	return y1.Add(clamp64(num / dx))
}
