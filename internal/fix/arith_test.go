package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tessem/fixmath/internal/fix"
)

func TestSaturatingArithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, fix.FromInt(5), fix.FromInt(2).Add(fix.FromInt(3)))
		assert.Equal(t, fix.Lit(0.75), fix.Lit(0.5).Add(fix.Lit(0.25)))
	})

	t.Run("Add saturates at Max", func(t *testing.T) {
		assert.Equal(t, fix.Max, fix.Max.Add(fix.FromInt(1)))
		assert.Equal(t, fix.Max, fix.Max.Add(fix.Max))
	})

	t.Run("Sub saturates at Min", func(t *testing.T) {
		assert.Equal(t, fix.Min, fix.Min.Sub(fix.FromInt(1)))
		assert.Equal(t, fix.Min, fix.Min.Sub(fix.Max))
	})

	t.Run("Mul", func(t *testing.T) {
		assert.Equal(t, fix.FromInt(6), fix.FromInt(2).Mul(fix.FromInt(3)))
		assert.Equal(t, fix.Lit(0.25), fix.Lit(0.5).Mul(fix.Lit(0.5)))
		assert.Equal(t, fix.FromInt(-6), fix.FromInt(2).Mul(fix.FromInt(-3)))
	})

	t.Run("Mul saturates", func(t *testing.T) {
		assert.Equal(t, fix.Max, fix.FromInt(30000).Mul(fix.FromInt(30000)))
		assert.Equal(t, fix.Min, fix.FromInt(30000).Mul(fix.FromInt(-30000)))
	})

	t.Run("Div", func(t *testing.T) {
		assert.Equal(t, fix.FromInt(3), fix.FromInt(6).Div(fix.FromInt(2)))
		assert.Equal(t, fix.Lit(0.25), fix.One.Div(fix.FromInt(4)))
	})

	t.Run("Div by zero saturates", func(t *testing.T) {
		assert.Equal(t, fix.Max, fix.FromInt(1).Div(fix.Fixed(0)))
		assert.Equal(t, fix.Max, fix.Fixed(0).Div(fix.Fixed(0)))
		assert.Equal(t, fix.Min, fix.FromInt(-1).Div(fix.Fixed(0)))
	})

	t.Run("Div saturates on overflow", func(t *testing.T) {
		assert.Equal(t, fix.Max, fix.FromInt(30000).Div(fix.Lit(0.5)))
	})

	t.Run("Neg and Abs", func(t *testing.T) {
		assert.Equal(t, fix.FromInt(-3), fix.FromInt(3).Neg())
		assert.Equal(t, fix.FromInt(3), fix.FromInt(-3).Abs())
		assert.Equal(t, fix.FromInt(3), fix.FromInt(3).Abs())
		assert.Equal(t, fix.Max, fix.Min.Neg())
		assert.Equal(t, fix.Max, fix.Min.Abs())
	})

	t.Run("Comparisons are native", func(t *testing.T) {
		assert.True(t, fix.Lit(0.5) < fix.One)
		assert.True(t, fix.FromInt(-2) < fix.FromInt(-1))
		assert.True(t, fix.Max > fix.Min)
	})
}
