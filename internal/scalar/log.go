package scalar

import (
	"math"

	"github.com/born-ml/backprop/internal/autodiff"
)

// LogOp computes the natural logarithm.
//
// Forward:
//
//	output = log(a)
//
// Backward:
//
//	∂L/∂a = ∂L/∂output * (1 / a)
//
// Input must be positive.
type LogOp struct{}

// Name returns "log".
func (LogOp) Name() string { return "log" }

// Forward computes log(a).
func (LogOp) Forward(ctx *autodiff.Context[float64], inputs ...float64) float64 {
	a := inputs[0]
	ctx.SaveForBackward(a)
	return math.Log(a)
}

// Backward computes d/a.
func (LogOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	a := ctx.SavedTensors()[0]
	return []float64{d / a}
}
