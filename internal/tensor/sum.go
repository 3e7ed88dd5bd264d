package tensor

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// SumOp reduces a matrix to a 1×1 sum of all elements. The backward pass
// broadcasts the incoming 1×1 gradient to the input shape.
type SumOp struct{}

// Name returns "sum".
func (SumOp) Name() string { return "sum" }

// Forward computes the total and saves the input for its shape.
func (SumOp) Forward(ctx *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense {
	a := inputs[0]
	ctx.SaveForBackward(a)
	return mat.NewDense(1, 1, []float64{mat.Sum(a)})
}

// Backward fills the input shape with the output gradient.
func (SumOp) Backward(ctx *autodiff.Context[*mat.Dense], d *mat.Dense) []*mat.Dense {
	a := ctx.SavedTensors()[0]
	grad := ones(a.Dims())
	grad.Scale(d.At(0, 0), grad)
	return []*mat.Dense{grad}
}
