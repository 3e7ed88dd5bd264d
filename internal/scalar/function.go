package scalar

import "github.com/born-ml/backprop/internal/autodiff"

// Function is a differentiable operation on scalars.
//
// Forward computes the output from raw input values and may save whatever the
// backward pass needs in ctx. Backward returns one gradient per input.
type Function interface {
	Name() string
	Forward(ctx *autodiff.Context[float64], inputs ...float64) float64
	Backward(ctx *autodiff.Context[float64], dOutput float64) []float64
}

// Apply runs fn on inputs and records the history needed to differentiate
// through it.
//
// When every input is constant, the forward pass runs with a no-grad context
// and the result is a constant.
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	needGrad := false
	raw := make([]float64, len(inputs))
	for i, in := range inputs {
		raw[i] = in.data
		if !in.IsConstant() {
			needGrad = true
		}
	}

	ctx := autodiff.NewContext[float64](!needGrad)
	out := fn.Forward(ctx, raw...)

	if !needGrad {
		return Constant(out)
	}
	return newScalar(out, &History{
		LastFn: fn,
		Ctx:    ctx,
		Inputs: inputs,
	})
}
