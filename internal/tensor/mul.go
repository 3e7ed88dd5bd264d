package tensor

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// MulElemOp computes the element-wise product a ∘ b.
//
// Backward pass:
//   - grad_a = outputGrad ∘ b
//   - grad_b = outputGrad ∘ a
type MulElemOp struct{}

// Name returns "mul".
func (MulElemOp) Name() string { return "mul" }

// Forward computes a ∘ b and saves both inputs.
func (MulElemOp) Forward(ctx *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense {
	a, b := inputs[0], inputs[1]
	ctx.SaveForBackward(a, b)

	var out mat.Dense
	out.MulElem(a, b)
	return &out
}

// Backward computes (d ∘ b, d ∘ a).
func (MulElemOp) Backward(ctx *autodiff.Context[*mat.Dense], d *mat.Dense) []*mat.Dense {
	saved := ctx.SavedTensors()
	a, b := saved[0], saved[1]

	var gradA, gradB mat.Dense
	gradA.MulElem(d, b)
	gradB.MulElem(d, a)
	return []*mat.Dense{&gradA, &gradB}
}
