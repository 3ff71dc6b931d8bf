// Package common holds the shared plumbing for the fixed-point math
// provider modules.
//
// The provider exposes the Q16.16 core (internal/fix) as a tool surface:
//   - arithmetic: saturating add, sub, mul, div, plus pow, sqrt, exp, log
//   - trig: sin, cos, tan, asin, acos, atan2, angle conversions
//   - utilities: constants, clamp, interpolation, literal construction
//
// Operands cross the boundary as raw Q16.16 integers (JSON numbers), so a
// caller sees exactly the bits the core computes with; results carry both
// the raw value and a float rendering for display.
package common
