package scalar

import "github.com/born-ml/backprop/internal/autodiff"

// ReLUOp computes max(0, a). Backward: 1 if a > 0, else 0.
type ReLUOp struct{}

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Forward computes max(0, a).
func (ReLUOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	a := inputs[0]
	ctx.SaveForBackward(a)
	if a > 0 {
		return a
	}
	return 0
}

// Backward routes d only where the input was positive.
func (ReLUOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	if ctx.SavedTensors()[0] > 0 {
		return []float64{d}
	}
	return []float64{0}
}
