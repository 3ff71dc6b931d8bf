package math

import (
	"context"
	"fmt"

	"github.com/tessem/fixmath/internal/providers/math/common"
	"github.com/tessem/fixmath/internal/providers/math/operations"
	"github.com/tessem/fixmath/internal/providers/math/utilities"
	"github.com/tessem/fixmath/internal/types"
)

// Provider implements fixed-point mathematical operations
type Provider struct {
	// Module instances
	arithmetic *operations.ArithmeticOps
	trig       *operations.TrigOps
	constants  *utilities.ConstantsOps
	utility    *utilities.UtilityOps
}

// NewProvider creates a modular fixed-point math provider
func NewProvider() *Provider {
	ops := &common.FixOps{}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{FixOps: ops},
		trig:       &operations.TrigOps{FixOps: ops},
		constants:  &utilities.ConstantsOps{FixOps: ops},
		utility:    &utilities.UtilityOps{FixOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)
	tools = append(tools, m.utility.GetTools()...)

	return types.Service{
		ID:          "fix",
		Name:        "Fixed-Point Math Service",
		Description: "Q16.16 fixed-point operations (saturating arithmetic, trig, exponentials, utilities)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"trigonometry",
			"exponentials",
			"constants",
			"utilities",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "fix.add":
		return m.arithmetic.Add(ctx, params, appCtx)
	case "fix.sub":
		return m.arithmetic.Sub(ctx, params, appCtx)
	case "fix.mul":
		return m.arithmetic.Mul(ctx, params, appCtx)
	case "fix.div":
		return m.arithmetic.Div(ctx, params, appCtx)
	case "fix.neg":
		return m.arithmetic.Neg(ctx, params, appCtx)
	case "fix.abs":
		return m.arithmetic.Abs(ctx, params, appCtx)
	case "fix.pow":
		return m.arithmetic.Pow(ctx, params, appCtx)
	case "fix.sqrt":
		return m.arithmetic.Sqrt(ctx, params, appCtx)
	case "fix.exp":
		return m.arithmetic.Exp(ctx, params, appCtx)
	case "fix.log":
		return m.arithmetic.Log(ctx, params, appCtx)
	case "fix.log10":
		return m.arithmetic.Log10(ctx, params, appCtx)
	case "fix.log10i":
		return m.arithmetic.Log10Int(ctx, params, appCtx)
	case "fix.round":
		return m.arithmetic.Round(ctx, params, appCtx)
	case "fix.trunc":
		return m.arithmetic.Trunc(ctx, params, appCtx)
	case "fix.frac":
		return m.arithmetic.Frac(ctx, params, appCtx)

	// Trig operations
	case "fix.sin":
		return m.trig.Sin(ctx, params, appCtx)
	case "fix.cos":
		return m.trig.Cos(ctx, params, appCtx)
	case "fix.tan":
		return m.trig.Tan(ctx, params, appCtx)
	case "fix.asin":
		return m.trig.Asin(ctx, params, appCtx)
	case "fix.acos":
		return m.trig.Acos(ctx, params, appCtx)
	case "fix.atan2":
		return m.trig.Atan2(ctx, params, appCtx)
	case "fix.radians":
		return m.trig.DegreesToRadians(ctx, params, appCtx)
	case "fix.degrees":
		return m.trig.RadiansToDegrees(ctx, params, appCtx)

	// Constants
	case "fix.pi":
		return m.constants.Pi(ctx, params, appCtx)
	case "fix.e":
		return m.constants.E(ctx, params, appCtx)
	case "fix.one":
		return m.constants.One(ctx, params, appCtx)
	case "fix.logof10":
		return m.constants.LogOf10(ctx, params, appCtx)
	case "fix.min":
		return m.constants.Min(ctx, params, appCtx)
	case "fix.max":
		return m.constants.Max(ctx, params, appCtx)

	// Utilities
	case "fix.clamp":
		return m.utility.Clamp(ctx, params, appCtx)
	case "fix.interpolate":
		return m.utility.Interpolate(ctx, params, appCtx)
	case "fix.fromint":
		return m.utility.FromInt(ctx, params, appCtx)
	case "fix.literal":
		return m.utility.Literal(ctx, params, appCtx)

	// Remainder is intentionally not part of the fixed-point surface
	case "fix.mod":
		return common.Failure("modulo is not supported for fixed-point values")

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
