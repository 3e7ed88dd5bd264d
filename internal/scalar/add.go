package scalar

import "github.com/born-ml/backprop/internal/autodiff"

// AddOp computes a + b.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
type AddOp struct{}

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Forward computes a + b.
func (AddOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	return inputs[0] + inputs[1]
}

// Backward passes the output gradient to both inputs unchanged.
func (AddOp) Backward(_ *autodiff.Context[float64], d float64) []float64 {
	return []float64{d, d}
}
