package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tessem/fixmath/internal/fix"
)

func TestClamp(t *testing.T) {
	t.Run("Full range is a no-op", func(t *testing.T) {
		for _, v := range []fix.Fixed{fix.Min, fix.FromInt(-5), 0, fix.Lit(0.5), fix.Max} {
			assert.Equal(t, v, v.Clamp(fix.Min, fix.Max), "v=%s", v)
		}
	})

	t.Run("Clamps at both ends", func(t *testing.T) {
		lo, hi := fix.FromInt(-1), fix.FromInt(1)
		assert.Equal(t, lo, fix.FromInt(-5).Clamp(lo, hi))
		assert.Equal(t, hi, fix.FromInt(5).Clamp(lo, hi))
		assert.Equal(t, fix.Lit(0.5), fix.Lit(0.5).Clamp(lo, hi))
	})

	t.Run("Boundary values pass through", func(t *testing.T) {
		lo, hi := fix.FromInt(-1), fix.FromInt(1)
		assert.Equal(t, lo, lo.Clamp(lo, hi))
		assert.Equal(t, hi, hi.Clamp(lo, hi))
	})
}

func TestInterpolate(t *testing.T) {
	x1, y1 := fix.FromInt(0), fix.FromInt(2)
	x2, y2 := fix.FromInt(10), fix.FromInt(6)

	t.Run("Endpoints are exact", func(t *testing.T) {
		assert.Equal(t, y1, fix.Interpolate(x1, x1, y1, x2, y2))
		assert.Equal(t, y2, fix.Interpolate(x2, x1, y1, x2, y2))
	})

	t.Run("Endpoints are exact for unfriendly deltas", func(t *testing.T) {
		// The span does not divide the raw product evenly, so any
		// intermediate rounding would land one raw unit short of y2.
		p := fix.Fixed(65537)
		assert.Equal(t, p, fix.Interpolate(p, 0, 0, p, p))
		assert.Equal(t, fix.Fixed(3), fix.Interpolate(fix.Fixed(7), fix.Fixed(1), fix.Fixed(-5), fix.Fixed(7), fix.Fixed(3)))
	})

	t.Run("Midpoint", func(t *testing.T) {
		assert.Equal(t, fix.FromInt(4), fix.Interpolate(fix.FromInt(5), x1, y1, x2, y2))
	})

	t.Run("Extrapolates beyond the segment", func(t *testing.T) {
		assert.Equal(t, fix.FromInt(10), fix.Interpolate(fix.FromInt(20), x1, y1, x2, y2))
		assert.Equal(t, fix.FromInt(0), fix.Interpolate(fix.FromInt(-5), x1, y1, x2, y2))
	})

	t.Run("Descending segment", func(t *testing.T) {
		assert.Equal(t, fix.FromInt(3), fix.Interpolate(fix.FromInt(5), x1, fix.FromInt(6), x2, fix.FromInt(0)))
	})

	t.Run("Degenerate interval saturates instead of crashing", func(t *testing.T) {
		got := fix.Interpolate(fix.FromInt(1), x1, y1, x1, y2)
		assert.Equal(t, fix.Max, got)
	})
}
