package scalar

import (
	"math"

	"github.com/born-ml/backprop/internal/autodiff"
)

// SigmoidOp computes σ(a) = 1 / (1 + e^-a).
//
// Backward: dσ/da = σ(a) * (1 - σ(a)), computed from the saved output.
type SigmoidOp struct{}

// Name returns "sigmoid".
func (SigmoidOp) Name() string { return "sigmoid" }

// Forward computes σ(a) and saves it.
func (SigmoidOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	out := sigmoid(inputs[0])
	ctx.SaveForBackward(out)
	return out
}

// Backward computes d * σ(a) * (1 - σ(a)).
func (SigmoidOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	s := ctx.SavedTensors()[0]
	return []float64{d * s * (1 - s)}
}

// sigmoid avoids overflow of e^-a for large negative a.
func sigmoid(a float64) float64 {
	if a >= 0 {
		return 1 / (1 + math.Exp(-a))
	}
	e := math.Exp(a)
	return e / (1 + e)
}
