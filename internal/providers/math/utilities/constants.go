package utilities

import (
	"context"

	"github.com/tessem/fixmath/internal/fix"
	"github.com/tessem/fixmath/internal/providers/math/common"
	"github.com/tessem/fixmath/internal/types"
)

// ConstantsOps serves the named fixed-point constants
type ConstantsOps struct {
	*common.FixOps
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "fix.pi", Name: "Pi", Description: "The circle constant as Q16.16", Returns: "fixed"},
		{ID: "fix.e", Name: "E", Description: "The exponential base as Q16.16", Returns: "fixed"},
		{ID: "fix.one", Name: "One", Description: "The fixed-point representation of 1.0", Returns: "fixed"},
		{ID: "fix.logof10", Name: "Log of 10", Description: "ln(10) as Q16.16", Returns: "fixed"},
		{ID: "fix.min", Name: "Minimum", Description: "The most negative representable value", Returns: "fixed"},
		{ID: "fix.max", Name: "Maximum", Description: "The largest representable value", Returns: "fixed"},
	}
}

// Pi returns the circle constant
func (c *ConstantsOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Fixed(fix.Pi)
}

// E returns the exponential base
func (c *ConstantsOps) E(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Fixed(fix.E)
}

// One returns 1.0
func (c *ConstantsOps) One(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Fixed(fix.One)
}

// LogOf10 returns ln(10)
func (c *ConstantsOps) LogOf10(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Fixed(fix.LogOf10)
}

// Min returns the lower range bound
func (c *ConstantsOps) Min(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Fixed(fix.Min)
}

// Max returns the upper range bound
func (c *ConstantsOps) Max(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Fixed(fix.Max)
}
