package common

import (
	gomath "math"

	"github.com/tessem/fixmath/internal/fix"
	"github.com/tessem/fixmath/internal/types"
)

// FixOps is the shared base embedded by all provider modules.
type FixOps struct{}

// Success builds a successful result.
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure builds a failed result with a message.
func Failure(message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &message}, nil
}

// Fixed builds the standard result payload for a fixed-point value: the
// raw Q16.16 integer plus a float rendering for display.
func Fixed(v fix.Fixed) (*types.Result, error) {
	return Success(map[string]interface{}{
		"result": int64(v),
		"approx": v.Float(),
	})
}

// Integer builds the result payload for a plain integer result.
func Integer(v int) (*types.Result, error) {
	return Success(map[string]interface{}{"result": v})
}

// GetFixed extracts a raw Q16.16 operand from params. JSON numbers decode
// as float64; out-of-range raws clamp to the representable bounds, matching
// the saturation contract everywhere else.
func GetFixed(params map[string]interface{}, key string) (fix.Fixed, bool) {
	raw, ok := getInt64(params, key)
	if !ok {
		return 0, false
	}
	if raw > int64(fix.Max) {
		return fix.Max, true
	}
	if raw < int64(fix.Min) {
		return fix.Min, true
	}
	return fix.Fixed(raw), true
}

// GetFixedOr extracts a raw Q16.16 operand, falling back to def when the
// key is absent. A present-but-malformed value still fails.
func GetFixedOr(params map[string]interface{}, key string, def fix.Fixed) (fix.Fixed, bool) {
	if _, present := params[key]; !present {
		return def, true
	}
	return GetFixed(params, key)
}

// GetInt extracts a plain (unscaled) integer parameter, such as a pow
// exponent or a log10i argument.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	v, ok := getInt64(params, key)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// GetFloat extracts a decimal literal parameter.
func GetFloat(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func getInt64(params map[string]interface{}, key string) (int64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	switch n := val.(type) {
	case float64:
		// Conversion of a float64 outside int64 range is unspecified,
		// so bound it first to keep the saturation sign correct.
		if n >= gomath.MaxInt64 {
			return gomath.MaxInt64, true
		}
		if n <= gomath.MinInt64 {
			return gomath.MinInt64, true
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	}
	return 0, false
}
