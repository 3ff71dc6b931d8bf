package utilities

import (
	"context"

	"github.com/tessem/fixmath/internal/fix"
	"github.com/tessem/fixmath/internal/providers/math/common"
	"github.com/tessem/fixmath/internal/types"
)

// UtilityOps handles clamping, interpolation and value construction
type UtilityOps struct {
	*common.FixOps
}

// GetTools returns utility tool definitions
func (u *UtilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fix.clamp",
			Name:        "Clamp",
			Description: "Clamp a value into [min, max]; bounds default to the full range",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
				{Name: "min", Type: "fixed", Description: "Lower bound, default range minimum", Required: false},
				{Name: "max", Type: "fixed", Description: "Upper bound, default range maximum", Required: false},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.interpolate",
			Name:        "Linear Interpolation",
			Description: "Interpolate or extrapolate through (x1,y1) and (x2,y2)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Sample point (raw Q16.16)", Required: true},
				{Name: "x1", Type: "fixed", Description: "First point x (raw Q16.16)", Required: true},
				{Name: "y1", Type: "fixed", Description: "First point y (raw Q16.16)", Required: true},
				{Name: "x2", Type: "fixed", Description: "Second point x (raw Q16.16)", Required: true},
				{Name: "y2", Type: "fixed", Description: "Second point y (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.fromint",
			Name:        "From Integer",
			Description: "Convert a plain integer to fixed point, saturating out of range",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Unscaled integer", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.literal",
			Name:        "Literal",
			Description: "Quantize a decimal literal to Q16.16 (five-digit decimal scaling)",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Decimal literal", Required: true},
			},
			Returns: "fixed",
		},
	}
}

// Clamp clamps x into [min, max]; absent bounds default to the full
// representable range, making the default clamp a no-op.
func (u *UtilityOps) Clamp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	lo, ok := common.GetFixedOr(params, "min", fix.Min)
	if !ok {
		return common.Failure("min parameter invalid")
	}
	hi, ok := common.GetFixedOr(params, "max", fix.Max)
	if !ok {
		return common.Failure("max parameter invalid")
	}

	return common.Fixed(x.Clamp(lo, hi))
}

// Interpolate evaluates the line through two points at x
func (u *UtilityOps) Interpolate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	var vals [5]fix.Fixed
	for i, key := range []string{"x", "x1", "y1", "x2", "y2"} {
		v, ok := common.GetFixed(params, key)
		if !ok {
			return common.Failure(key + " parameter required")
		}
		vals[i] = v
	}

	return common.Fixed(fix.Interpolate(vals[0], vals[1], vals[2], vals[3], vals[4]))
}

// FromInt converts a plain integer to fixed point
func (u *UtilityOps) FromInt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}

	return common.Fixed(fix.FromInt(n))
}

// Literal quantizes a decimal literal to fixed point
func (u *UtilityOps) Literal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetFloat(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}

	return common.Fixed(fix.Lit(v))
}
