package scalar

import "github.com/born-ml/backprop/internal/autodiff"

// MulOp computes a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
type MulOp struct{}

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// Forward computes a * b and saves both inputs.
func (MulOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	a, b := inputs[0], inputs[1]
	ctx.SaveForBackward(a, b)
	return a * b
}

// Backward computes (d*b, d*a).
func (MulOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	saved := ctx.SavedTensors()
	a, b := saved[0], saved[1]
	return []float64{d * b, d * a}
}
