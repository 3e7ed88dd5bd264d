package tensor

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// Function is a differentiable operation on matrices. Backward returns one
// gradient per input, each with the shape of that input.
type Function interface {
	Name() string
	Forward(ctx *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense
	Backward(ctx *autodiff.Context[*mat.Dense], dOutput *mat.Dense) []*mat.Dense
}

// Apply runs fn on inputs and records the history needed to differentiate
// through it. Operations on constants only produce constants.
func Apply(fn Function, inputs ...*Tensor) *Tensor {
	needGrad := false
	raw := make([]*mat.Dense, len(inputs))
	for i, in := range inputs {
		raw[i] = in.value
		if !in.IsConstant() {
			needGrad = true
		}
	}

	ctx := autodiff.NewContext[*mat.Dense](!needGrad)
	out := fn.Forward(ctx, raw...)

	if !needGrad {
		return newTensor(out, nil)
	}
	return newTensor(out, &History{
		LastFn: fn,
		Ctx:    ctx,
		Inputs: inputs,
	})
}
