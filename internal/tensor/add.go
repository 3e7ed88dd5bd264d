package tensor

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// AddOp computes a + b for matrices of equal shape.
//
// Backward pass:
//   - grad_a = outputGrad
//   - grad_b = outputGrad
type AddOp struct{}

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Forward computes a + b.
func (AddOp) Forward(_ *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Add(inputs[0], inputs[1])
	return &out
}

// Backward passes the output gradient to both inputs.
func (AddOp) Backward(_ *autodiff.Context[*mat.Dense], d *mat.Dense) []*mat.Dense {
	return []*mat.Dense{d, d}
}

// SubOp computes a - b for matrices of equal shape.
type SubOp struct{}

// Name returns "sub".
func (SubOp) Name() string { return "sub" }

// Forward computes a - b.
func (SubOp) Forward(_ *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Sub(inputs[0], inputs[1])
	return &out
}

// Backward returns (d, -d).
func (SubOp) Backward(_ *autodiff.Context[*mat.Dense], d *mat.Dense) []*mat.Dense {
	var neg mat.Dense
	neg.Scale(-1, d)
	return []*mat.Dense{d, &neg}
}
