// Package fix implements Q16.16 fixed-point arithmetic: a signed 32-bit
// binary fraction with 16 integer and 16 fractional bits, saturating
// arithmetic, and a library of transcendental and geometric functions
// built on top of a small primitive set.
//
// Every value is a plain int32 reinterpreted as raw/65536, so results are
// bit-exact and reproducible across platforms with no FPU involvement.
// Arithmetic that would leave the representable range clamps to Min or Max;
// it never wraps and never panics.
//
// There is deliberately no remainder operation: modulo has no defined
// meaning on the scaled representation, so the API simply does not
// provide one.
package fix

import "strconv"

// Fixed is a Q16.16 fixed-point number. The zero value is 0.0.
type Fixed int32

const (
	shift    = 16
	scale    = 1 << shift
	fracMask = scale - 1
)

const (
	// Min is the most negative representable value, -32768.0.
	Min Fixed = -1 << 31
	// Max is the largest representable value, 32767.99998...
	Max Fixed = 1<<31 - 1
	// One is the fixed-point representation of 1.0.
	One Fixed = 1 << shift
)

// Derived constants, built with Lit so their raw values match the
// five-digit decimal quantization contract bit for bit.
var (
	// Pi is the circle constant.
	Pi = Lit(3.14159265)
	// E is the base of the natural logarithm.
	E = Lit(2.7182818)
	// LogOf10 is ln(10), the base-change divisor used by Log10.
	LogOf10 = Lit(2.30258509)
)

// Internal constants for the primitive implementations.
var (
	halfPi    = Fixed(int32(Pi) / 2)
	quarterPi = Fixed(int32(Pi) / 4)
	twoPi     = Fixed(int32(Pi) * 2)
	ln2       = Lit(0.69314718)

	// ln(65536): compensates Log applied to an integer reinterpreted as a
	// raw Fixed (see Log10Int).
	logOfScale = Lit(11.09035)

	// Exp saturates outside [ln(2^-16), ln(32768)].
	expMax = Lit(10.3972)
	expMin = Lit(-11.0904)
)

// Lit converts a decimal literal to fixed point. The literal is quantized
// to five decimal digits before scaling: the value is scaled by 65536*100000
// with a +0.5 rounding bias for positive inputs, truncated to an integer,
// then divided back down by 100000. Stored constants (Pi, E, LogOf10, the
// Log10Int compensation) depend on this exact procedure; do not replace it
// with a plain round(v*65536).
//
// Out-of-range literals are clamped in float space before scaling: the
// float-to-int64 conversion is unspecified for values outside int64 range,
// so scaling first would let a huge positive literal land on Min.
func Lit(v float64) Fixed {
	if v >= 32768 {
		return Max
	}
	if v < -32768 {
		return Min
	}
	t := v * scale * 100000
	if v > 0 {
		t += 0.5
	}
	return clamp64(int64(t) / 100000)
}

// FromInt converts an integer to fixed point exactly, saturating to Min or
// Max when the integer falls outside [-32768, 32767].
func FromInt(v int) Fixed {
	return clamp64(int64(v) << shift)
}

// Int returns the integer part of f, truncating toward zero. This is the
// inverse of FromInt for in-range integers.
func (f Fixed) Int() int {
	return int(f) / scale
}

// Trunc returns the integer part of f, truncating toward zero for both
// signs: +1.6 becomes +1 and -1.6 becomes -1. The raw shift rounds toward
// negative infinity, so a negative value with a nonzero fraction needs a
// +1 correction.
func (f Fixed) Trunc() int {
	q := int(f >> shift)
	if f < 0 && f&fracMask != 0 {
		q++
	}
	return q
}

// Frac returns the fractional part of f as a non-negative Fixed:
// both +1.6 and -1.6 yield 0.6.
func (f Fixed) Frac() Fixed {
	r := f
	if r < 0 {
		r = -r
	}
	return r & fracMask
}

// Float converts f to a float64. Intended for display and testing only;
// the deterministic arithmetic never passes through floating point.
func (f Fixed) Float() float64 {
	return float64(f) / scale
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float(), 'f', 5, 64)
}

func clamp64(v int64) Fixed {
	if v > int64(Max) {
		return Max
	}
	if v < int64(Min) {
		return Min
	}
	return Fixed(v)
}
