package fix

// Saturating arithmetic. Each operation computes the exact result in 64
// bits and clamps into [Min, Max] before narrowing back to 32, so an
// out-of-range result pins to the nearest bound instead of wrapping.

// Add returns f + g.
func (f Fixed) Add(g Fixed) Fixed {
	return clamp64(int64(f) + int64(g))
}

// Sub returns f - g.
func (f Fixed) Sub(g Fixed) Fixed {
	return clamp64(int64(f) - int64(g))
}

// Mul returns f * g. The 64-bit product cannot overflow, so only the final
// narrowing can saturate.
func (f Fixed) Mul(g Fixed) Fixed {
	return clamp64(int64(f) * int64(g) >> shift)
}

// Div returns f / g. Division by zero saturates instead of panicking: Max
// for a non-negative dividend, Min for a negative one.
func (f Fixed) Div(g Fixed) Fixed {
	if g == 0 {
		if f < 0 {
			return Min
		}
		return Max
	}
	return clamp64((int64(f) << shift) / int64(g))
}

// Neg returns -f. Negating Min saturates to Max.
func (f Fixed) Neg() Fixed {
	if f == Min {
		return Max
	}
	return -f
}

// Abs returns the absolute value of f. Abs(Min) saturates to Max.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return f.Neg()
	}
	return f
}
