package operations

import (
	"context"

	"github.com/tessem/fixmath/internal/fix"
	"github.com/tessem/fixmath/internal/providers/math/common"
	"github.com/tessem/fixmath/internal/types"
)

// TrigOps handles fixed-point trigonometric operations
type TrigOps struct {
	*common.FixOps
}

// GetTools returns trigonometric tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fix.sin",
			Name:        "Sine",
			Description: "Sine of a radian angle; the primitive range-reduces internally",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Angle in radians (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.cos",
			Name:        "Cosine",
			Description: "Cosine of a radian angle, derived as sin(x + pi/2)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Angle in radians (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.tan",
			Name:        "Tangent",
			Description: "Tangent; saturates toward the extremes near odd multiples of pi/2",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Angle in radians (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.asin",
			Name:        "Arcsine",
			Description: "Arcsine for values in [-1, 1]; out-of-domain input clamps to ±pi/2",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.acos",
			Name:        "Arccosine",
			Description: "Arccosine for values in [-1, 1]; out-of-domain input clamps to 0 or pi",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.atan2",
			Name:        "Two-Argument Arctangent",
			Description: "Quadrant-aware arctangent of y/x, in (-pi, pi]",
			Parameters: []types.Parameter{
				{Name: "y", Type: "fixed", Description: "Ordinate (raw Q16.16)", Required: true},
				{Name: "x", Type: "fixed", Description: "Abscissa (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.radians",
			Name:        "Degrees to Radians",
			Description: "Convert degrees to radians",
			Parameters: []types.Parameter{
				{Name: "degrees", Type: "fixed", Description: "Angle in degrees (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.degrees",
			Name:        "Radians to Degrees",
			Description: "Convert radians to degrees",
			Parameters: []types.Parameter{
				{Name: "radians", Type: "fixed", Description: "Angle in radians (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
	}
}

// Sin computes the sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Sin(x))
}

// Cos computes the cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Cos(x))
}

// Tan computes the tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Tan(x))
}

// Asin computes the arcsine
func (t *TrigOps) Asin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Asin(x))
}

// Acos computes the arccosine
func (t *TrigOps) Acos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Acos(x))
}

// Atan2 computes the two-argument arctangent
func (t *TrigOps) Atan2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, ok := common.GetFixed(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Atan2(y, x))
}

// DegreesToRadians converts degrees to radians
func (t *TrigOps) DegreesToRadians(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, ok := common.GetFixed(params, "degrees")
	if !ok {
		return common.Failure("degrees parameter required")
	}

	return common.Fixed(fix.Deg2Rad(d))
}

// RadiansToDegrees converts radians to degrees
func (t *TrigOps) RadiansToDegrees(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	r, ok := common.GetFixed(params, "radians")
	if !ok {
		return common.Failure("radians parameter required")
	}

	return common.Fixed(fix.Rad2Deg(r))
}
