package scalar

import (
	"math"

	"github.com/born-ml/backprop/internal/autodiff"
)

// ExpOp computes e^a. The backward pass reuses the forward output:
// d(e^a)/da = e^a.
type ExpOp struct{}

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Forward computes e^a and saves it.
func (ExpOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	out := math.Exp(inputs[0])
	ctx.SaveForBackward(out)
	return out
}

// Backward computes d * e^a.
func (ExpOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	out := ctx.SavedTensors()[0]
	return []float64{d * out}
}
