package tensor

import (
	"math"

	"github.com/born-ml/backprop/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// ReLUOp computes max(0, x) element-wise. Gradients only flow where the
// input was positive.
type ReLUOp struct{}

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Forward computes max(0, x) and saves the input.
func (ReLUOp) Forward(ctx *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense {
	x := inputs[0]
	ctx.SaveForBackward(x)

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Max(0, v)
	}, x)
	return &out
}

// Backward masks the output gradient with x > 0.
func (ReLUOp) Backward(ctx *autodiff.Context[*mat.Dense], d *mat.Dense) []*mat.Dense {
	x := ctx.SavedTensors()[0]

	var grad mat.Dense
	grad.Apply(func(i, j int, v float64) float64 {
		if x.At(i, j) > 0 {
			return v
		}
		return 0
	}, d)
	return []*mat.Dense{&grad}
}

// ExpOp computes e^x element-wise, reusing the output in the backward pass.
type ExpOp struct{}

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Forward computes e^x and saves the result.
func (ExpOp) Forward(ctx *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(v)
	}, inputs[0])
	ctx.SaveForBackward(&out)
	return &out
}

// Backward computes d ∘ e^x.
func (ExpOp) Backward(ctx *autodiff.Context[*mat.Dense], d *mat.Dense) []*mat.Dense {
	out := ctx.SavedTensors()[0]

	var grad mat.Dense
	grad.MulElem(d, out)
	return []*mat.Dense{&grad}
}
