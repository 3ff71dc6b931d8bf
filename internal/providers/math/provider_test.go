package math

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessem/fixmath/internal/fix"
)

func execRaw(t *testing.T, p *Provider, toolID string, params map[string]interface{}) int64 {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "%s failed: %v", toolID, result.Error)
	raw, ok := result.Data["result"].(int64)
	require.True(t, ok, "%s result missing raw value: %v", toolID, result.Data)
	return raw
}

func TestProvider(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()
	one := int64(fix.One)

	t.Run("Arithmetic", func(t *testing.T) {
		t.Run("Add", func(t *testing.T) {
			assert.Equal(t, 2*one, execRaw(t, p, "fix.add", map[string]interface{}{"a": one, "b": one}))
		})

		t.Run("Subtract", func(t *testing.T) {
			assert.Equal(t, 2*one, execRaw(t, p, "fix.sub", map[string]interface{}{"a": 3 * one, "b": one}))
		})

		t.Run("Multiply", func(t *testing.T) {
			assert.Equal(t, 6*one, execRaw(t, p, "fix.mul", map[string]interface{}{"a": 2 * one, "b": 3 * one}))
		})

		t.Run("Divide", func(t *testing.T) {
			assert.Equal(t, 3*one, execRaw(t, p, "fix.div", map[string]interface{}{"a": 6 * one, "b": 2 * one}))
		})

		t.Run("Negate", func(t *testing.T) {
			assert.Equal(t, -one, execRaw(t, p, "fix.neg", map[string]interface{}{"x": one}))
		})

		t.Run("Absolute value", func(t *testing.T) {
			assert.Equal(t, one, execRaw(t, p, "fix.abs", map[string]interface{}{"x": -one}))
		})
	})

	t.Run("Saturation", func(t *testing.T) {
		maxRaw := int64(fix.Max)
		minRaw := int64(fix.Min)

		t.Run("Overflowing add pins to max", func(t *testing.T) {
			assert.Equal(t, maxRaw, execRaw(t, p, "fix.add", map[string]interface{}{"a": maxRaw, "b": maxRaw}))
		})

		t.Run("Underflowing sub pins to min", func(t *testing.T) {
			assert.Equal(t, minRaw, execRaw(t, p, "fix.sub", map[string]interface{}{"a": minRaw, "b": maxRaw}))
		})

		t.Run("Divide by zero follows the dividend sign", func(t *testing.T) {
			assert.Equal(t, maxRaw, execRaw(t, p, "fix.div", map[string]interface{}{"a": one, "b": 0}))
			assert.Equal(t, minRaw, execRaw(t, p, "fix.div", map[string]interface{}{"a": -one, "b": 0}))
		})

		t.Run("Raw params beyond int64 range keep their sign", func(t *testing.T) {
			// A JSON number this large no longer fits in int64, so the
			// decode path has to bound it before converting; the clamp
			// must land on the matching end of the range.
			assert.Equal(t, maxRaw, execRaw(t, p, "fix.abs", map[string]interface{}{"x": 1e300}))
			assert.Equal(t, maxRaw, execRaw(t, p, "fix.add", map[string]interface{}{"a": 1e300, "b": 0}))
			assert.Equal(t, minRaw, execRaw(t, p, "fix.add", map[string]interface{}{"a": -1e300, "b": 0}))
		})
	})

	t.Run("Trig and constants", func(t *testing.T) {
		t.Run("Sin at zero", func(t *testing.T) {
			assert.Equal(t, int64(0), execRaw(t, p, "fix.sin", map[string]interface{}{"x": 0}))
		})

		t.Run("Cos at zero", func(t *testing.T) {
			assert.Equal(t, one, execRaw(t, p, "fix.cos", map[string]interface{}{"x": 0}))
		})

		t.Run("Atan2 at the origin", func(t *testing.T) {
			assert.Equal(t, int64(0), execRaw(t, p, "fix.atan2", map[string]interface{}{"y": 0, "x": 0}))
		})

		t.Run("Constants", func(t *testing.T) {
			assert.Equal(t, int64(fix.Pi), execRaw(t, p, "fix.pi", nil))
			assert.Equal(t, int64(fix.E), execRaw(t, p, "fix.e", nil))
			assert.Equal(t, one, execRaw(t, p, "fix.one", nil))
		})
	})

	t.Run("Utilities", func(t *testing.T) {
		t.Run("Clamp without bounds passes through", func(t *testing.T) {
			assert.Equal(t, int64(fix.Min), execRaw(t, p, "fix.clamp", map[string]interface{}{"x": int64(fix.Min)}))
		})

		t.Run("Clamp above max", func(t *testing.T) {
			got := execRaw(t, p, "fix.clamp", map[string]interface{}{
				"x":   5 * one,
				"min": int64(0),
				"max": 2 * one,
			})
			assert.Equal(t, 2*one, got)
		})

		t.Run("Interpolate midpoint", func(t *testing.T) {
			got := execRaw(t, p, "fix.interpolate", map[string]interface{}{
				"x":  one,
				"x1": int64(0),
				"y1": int64(0),
				"x2": 2 * one,
				"y2": 10 * one,
			})
			assert.Equal(t, 5*one, got)
		})

		t.Run("FromInt", func(t *testing.T) {
			assert.Equal(t, 7*one, execRaw(t, p, "fix.fromint", map[string]interface{}{"n": 7}))
		})

		t.Run("Literal", func(t *testing.T) {
			assert.Equal(t, int64(32768), execRaw(t, p, "fix.literal", map[string]interface{}{"value": 0.5}))
		})

		t.Run("Literal beyond the range saturates by sign", func(t *testing.T) {
			assert.Equal(t, int64(fix.Max), execRaw(t, p, "fix.literal", map[string]interface{}{"value": 2e9}))
			assert.Equal(t, int64(fix.Min), execRaw(t, p, "fix.literal", map[string]interface{}{"value": -2e9}))
		})
	})

	t.Run("Rejections", func(t *testing.T) {
		t.Run("Modulo", func(t *testing.T) {
			result, err := p.Execute(ctx, "fix.mod", map[string]interface{}{"a": one, "b": one}, nil)
			require.NoError(t, err)
			assert.False(t, result.Success)
			require.NotNil(t, result.Error)
			assert.NotEmpty(t, *result.Error)
		})

		t.Run("Unknown tool", func(t *testing.T) {
			result, err := p.Execute(ctx, "fix.bogus", nil, nil)
			require.NoError(t, err)
			assert.False(t, result.Success)
		})

		t.Run("Missing operand", func(t *testing.T) {
			result, err := p.Execute(ctx, "fix.add", map[string]interface{}{"a": one}, nil)
			require.NoError(t, err)
			assert.False(t, result.Success)
		})
	})
}

func TestProviderDefinition(t *testing.T) {
	def := NewProvider().Definition()

	assert.Equal(t, "fix", string(def.ID))
	assert.Equal(t, "math", string(def.Category))
	require.NotEmpty(t, def.Tools)

	ids := make(map[string]bool, len(def.Tools))
	for _, tool := range def.Tools {
		assert.False(t, ids[tool.ID], "duplicate tool ID %s", tool.ID)
		ids[tool.ID] = true
	}

	for _, want := range []string{"fix.add", "fix.sin", "fix.sqrt", "fix.pi", "fix.interpolate", "fix.literal"} {
		assert.True(t, ids[want], "definition missing tool %s", want)
	}
	assert.False(t, ids["fix.mod"], "fix.mod must not be advertised")
}
