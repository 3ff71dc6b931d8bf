package fix

// Sqrt returns the square root of v, computed bit by bit on the raw value
// widened to Q32.32 so the result lands back on the Q16.16 grid. Perfect
// squares of whole numbers are exact.
//
// Negative input returns 0. The representation has no NaN to signal a
// domain violation with, so the sentinel keeps dependent compositions
// (Asin, Acos) clamped instead of garbage.
func Sqrt(v Fixed) Fixed {
	if v <= 0 {
		return 0
	}
	n := uint64(uint32(v)) << shift
	var root uint64
	bit := uint64(1) << 46
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= root+bit {
			n -= root + bit
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return Fixed(root)
}

// Log returns the natural logarithm of v. The input is scaled into [1, 2)
// by powers of two, the mantissa handled with the artanh series
// ln(m) = 2·(z + z³/3 + z⁵/5 + z⁷/7) where z = (m-1)/(m+1), and the
// exponent folded back in as k·ln2.
//
// Non-positive input saturates to Min; the true limit is -∞ and Min is the
// closest representable stand-in.
func Log(v Fixed) Fixed {
	if v <= 0 {
		return Min
	}
	k := int64(0)
	r := int64(v)
	for r >= int64(2*One) {
		r >>= 1
		k++
	}
	for r < int64(One) {
		r <<= 1
		k--
	}
	z := ((r - int64(One)) << shift) / (r + int64(One))
	z2 := z * z >> shift
	term := z
	sum := z
	term = term * z2 >> shift
	sum += term / 3
	term = term * z2 >> shift
	sum += term / 5
	term = term * z2 >> shift
	sum += term / 7
	return clamp64(2*sum + k*int64(ln2))
}

// Exp returns e^x. Large positive arguments saturate to Max and large
// negative ones flush to zero; in between the argument is split as
// x = k·ln2 + r with |r| <= ln2/2, e^r evaluated by Taylor series, and
// the result shifted by k.
func Exp(x Fixed) Fixed {
	if x >= expMax {
		return Max
	}
	if x <= expMin {
		return 0
	}
	q := (int64(x) << shift) / int64(ln2)
	k := (q + 1<<(shift-1)) >> shift
	r := int64(x) - k*int64(ln2)

	term := r
	sum := int64(One) + term
	for i := int64(2); i <= 6; i++ {
		term = (term * r >> shift) / i
		sum += term
	}

	if k >= 0 {
		return clamp64(sum << uint(k))
	}
	return clamp64(sum >> uint(-k))
}

// Pow raises v to an integer exponent by repeated multiplication, or by
// repeated division when the exponent is negative. The cost is linear in
// |n| on purpose: each step saturates individually, which pins down both
// the overflow point and the rounding of the chain. Squaring tricks would
// change those and are not a valid substitute.
//
// Exponent 0 returns exactly 1.0 for any base, including zero. A negative
// exponent with base zero follows Div's saturation.
func Pow(v Fixed, n int) Fixed {
	acc := One
	for i := 0; i < n; i++ {
		acc = acc.Mul(v)
	}
	for i := 0; i > n; i-- {
		acc = acc.Div(v)
	}
	return acc
}

// Log10 returns the base-10 logarithm of v as ln(v)/ln(10). Non-positive
// input inherits Log's Min saturation.
func Log10(v Fixed) Fixed {
	return Log(v).Div(LogOf10)
}

// Log10Int returns the base-10 logarithm of a plain (unscaled) integer n.
// The integer is reinterpreted directly as a raw Fixed, which implicitly
// divides it by 65536, so ln(65536) ≈ 11.09035 is added back before the
// base change:
//
//	log10(n) = (ln(n/65536) + ln(65536)) / ln(10)
//
// The compensation constant is an exact identity of the representation,
// not a tuning choice; it must stay in lockstep with the Q16.16 scale.
func Log10Int(n int) Fixed {
	if n > int(Max) {
		n = int(Max)
	}
	return Log(Fixed(n)).Add(logOfScale).Div(LogOf10)
}
