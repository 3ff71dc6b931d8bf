package fix

// Sin returns the sine of a radian angle. The argument is reduced modulo
// 2π and folded into a quarter period before evaluation, so the whole
// Fixed range is a valid domain. The result lies in [-1, 1].
func Sin(x Fixed) Fixed {
	r := int64(x) % int64(twoPi)
	if r > int64(Pi) {
		r -= int64(twoPi)
	} else if r < -int64(Pi) {
		r += int64(twoPi)
	}
	if r > int64(halfPi) {
		r = int64(Pi) - r
	} else if r < -int64(halfPi) {
		r = -int64(Pi) - r
	}
	return sinPoly(r)
}

// sinPoly evaluates the odd Taylor series x - x³/3! + x⁵/5! - x⁷/7! + x⁹/9!
// for |x| <= π/2, accumulating each term from the previous one so the
// alternating signs and factorial divisors fall out of the recurrence.
func sinPoly(r int64) Fixed {
	x2 := r * r >> shift
	term := r
	sum := r
	term = -(term * x2 >> shift) / 6
	sum += term
	term = -(term * x2 >> shift) / 20
	sum += term
	term = -(term * x2 >> shift) / 42
	sum += term
	term = -(term * x2 >> shift) / 72
	sum += term
	if sum > int64(One) {
		sum = int64(One)
	} else if sum < -int64(One) {
		sum = -int64(One)
	}
	return Fixed(sum)
}

// Cos returns the cosine of a radian angle, derived as sin(x + π/2) with a
// saturating add.
func Cos(x Fixed) Fixed {
	return Sin(x.Add(halfPi))
}

// Tan returns the tangent of a radian angle as sin(x)/cos(x). Near odd
// multiples of π/2 the division saturates toward Max or Min rather than
// producing an infinity; callers must tolerate that.
func Tan(x Fixed) Fixed {
	return Sin(x).Div(Cos(x))
}

// Atan2 returns the angle of the vector (x, y), in (-π, π] with the usual
// quadrant conventions. Atan2(0, 0) is 0.
func Atan2(y, x Fixed) Fixed {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := x.Abs(), y.Abs()
	var r Fixed
	if ax >= ay {
		r = atan01(ay.Div(ax))
	} else {
		r = halfPi.Sub(atan01(ax.Div(ay)))
	}
	if x < 0 {
		r = Pi.Sub(r)
	}
	if y < 0 {
		r = r.Neg()
	}
	return r
}

// atan(z) for z in [0, 1], via the minimax fit
// π/4·z + z·(1-z)·(0.2447 + 0.0663·z). Exact at z = 0 and z = 1.
func atan01(z Fixed) Fixed {
	c := atanC1.Add(atanC2.Mul(z))
	return quarterPi.Mul(z).Add(z.Mul(One.Sub(z)).Mul(c))
}

var (
	atanC1 = Lit(0.2447)
	atanC2 = Lit(0.0663)
)

// Asin returns the arcsine of v, derived as atan2(v, sqrt(1 - v²)).
// For v outside [-1, 1] the 1-v² operand goes negative and Sqrt's
// zero-sentinel policy applies, so the result clamps to ±π/2.
func Asin(v Fixed) Fixed {
	return Atan2(v, Sqrt(One.Sub(v.Mul(v))))
}

// Acos returns the arccosine of v, derived as atan2(sqrt(1 - v²), v).
// Out-of-domain inputs clamp to 0 or π through the same Sqrt policy
// as Asin.
func Acos(v Fixed) Fixed {
	return Atan2(Sqrt(One.Sub(v.Mul(v))), v)
}

// Rad2Deg converts radians to degrees: r * 180 / π.
func Rad2Deg(r Fixed) Fixed {
	return r.Mul(FromInt(180)).Div(Pi)
}

// Deg2Rad converts degrees to radians: d * π / 180.
func Deg2Rad(d Fixed) Fixed {
	return d.Mul(Pi).Div(FromInt(180))
}
