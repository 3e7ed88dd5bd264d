package scalar

import "github.com/born-ml/backprop/internal/autodiff"

// InvOp computes 1/a. Backward: d(1/a)/da = -1/a².
type InvOp struct{}

// Name returns "inv".
func (InvOp) Name() string { return "inv" }

// Forward computes 1/a.
func (InvOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	a := inputs[0]
	ctx.SaveForBackward(a)
	return 1 / a
}

// Backward computes -d/a².
func (InvOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	a := ctx.SavedTensors()[0]
	return []float64{-d / (a * a)}
}
