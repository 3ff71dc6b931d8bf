package operations

import (
	"context"

	"github.com/tessem/fixmath/internal/fix"
	"github.com/tessem/fixmath/internal/providers/math/common"
	"github.com/tessem/fixmath/internal/types"
)

// ArithmeticOps handles saturating fixed-point arithmetic operations
type ArithmeticOps struct {
	*common.FixOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fix.add",
			Name:        "Add",
			Description: "Add two fixed-point values (saturating)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "fixed", Description: "First operand (raw Q16.16)", Required: true},
				{Name: "b", Type: "fixed", Description: "Second operand (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.sub",
			Name:        "Subtract",
			Description: "Subtract b from a (saturating)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "fixed", Description: "Minuend (raw Q16.16)", Required: true},
				{Name: "b", Type: "fixed", Description: "Subtrahend (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.mul",
			Name:        "Multiply",
			Description: "Multiply two fixed-point values (saturating)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "fixed", Description: "First factor (raw Q16.16)", Required: true},
				{Name: "b", Type: "fixed", Description: "Second factor (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.div",
			Name:        "Divide",
			Description: "Divide a by b; division by zero saturates instead of failing",
			Parameters: []types.Parameter{
				{Name: "a", Type: "fixed", Description: "Dividend (raw Q16.16)", Required: true},
				{Name: "b", Type: "fixed", Description: "Divisor (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.neg",
			Name:        "Negate",
			Description: "Negate a fixed-point value",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.abs",
			Name:        "Absolute Value",
			Description: "Absolute value of a fixed-point number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.pow",
			Name:        "Power",
			Description: "Raise a fixed-point base to a plain integer exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "fixed", Description: "Base (raw Q16.16)", Required: true},
				{Name: "exponent", Type: "integer", Description: "Unscaled integer exponent", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.sqrt",
			Name:        "Square Root",
			Description: "Square root; negative input yields zero",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.exp",
			Name:        "Exponential",
			Description: "Calculate e^x, saturating for large exponents",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Exponent (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.log",
			Name:        "Natural Logarithm",
			Description: "Calculate ln(x); non-positive input saturates to the minimum",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.log10",
			Name:        "Base-10 Logarithm",
			Description: "Calculate log10(x) of a fixed-point value",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.log10i",
			Name:        "Integer Base-10 Logarithm",
			Description: "Calculate log10 of a plain (unscaled) integer",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Unscaled integer", Required: true},
			},
			Returns: "fixed",
		},
		{
			ID:          "fix.round",
			Name:        "To Integer",
			Description: "Convert to a plain integer, truncating toward zero",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "fix.trunc",
			Name:        "Truncate",
			Description: "Integer part, truncating toward zero for both signs",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "fix.frac",
			Name:        "Fractional Part",
			Description: "Non-negative fractional part",
			Parameters: []types.Parameter{
				{Name: "x", Type: "fixed", Description: "Value (raw Q16.16)", Required: true},
			},
			Returns: "fixed",
		},
	}
}

// Add adds two fixed-point values
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetFixed(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetFixed(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	return common.Fixed(valA.Add(valB))
}

// Sub subtracts b from a
func (a *ArithmeticOps) Sub(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetFixed(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetFixed(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	return common.Fixed(valA.Sub(valB))
}

// Mul multiplies two fixed-point values
func (a *ArithmeticOps) Mul(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetFixed(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetFixed(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	return common.Fixed(valA.Mul(valB))
}

// Div divides a by b; division by zero saturates per the core contract
func (a *ArithmeticOps) Div(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetFixed(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetFixed(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	return common.Fixed(valA.Div(valB))
}

// Neg negates a value
func (a *ArithmeticOps) Neg(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(x.Neg())
}

// Abs computes the absolute value
func (a *ArithmeticOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(x.Abs())
}

// Pow raises base to a plain integer exponent
func (a *ArithmeticOps) Pow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetFixed(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	exponent, ok := common.GetInt(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}

	return common.Fixed(fix.Pow(base, exponent))
}

// Sqrt computes the square root
func (a *ArithmeticOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Sqrt(x))
}

// Exp computes e^x
func (a *ArithmeticOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Exp(x))
}

// Log computes the natural logarithm
func (a *ArithmeticOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Log(x))
}

// Log10 computes the base-10 logarithm
func (a *ArithmeticOps) Log10(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(fix.Log10(x))
}

// Log10Int computes the base-10 logarithm of a plain integer
func (a *ArithmeticOps) Log10Int(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}

	return common.Fixed(fix.Log10Int(n))
}

// Round converts to a plain integer, truncating toward zero
func (a *ArithmeticOps) Round(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Integer(x.Int())
}

// Trunc extracts the integer part, truncating toward zero
func (a *ArithmeticOps) Trunc(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Integer(x.Trunc())
}

// Frac extracts the non-negative fractional part
func (a *ArithmeticOps) Frac(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetFixed(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Fixed(x.Frac())
}
