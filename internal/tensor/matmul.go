package tensor

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// MatMulOp computes the matrix product A @ B.
//
// Backward pass:
//   - d(A@B)/dA = grad @ B^T
//   - d(A@B)/dB = A^T @ grad
type MatMulOp struct{}

// Name returns "matmul".
func (MatMulOp) Name() string { return "matmul" }

// Forward computes A @ B and saves both operands.
func (MatMulOp) Forward(ctx *autodiff.Context[*mat.Dense], inputs ...*mat.Dense) *mat.Dense {
	a, b := inputs[0], inputs[1]
	ctx.SaveForBackward(a, b)

	var out mat.Dense
	out.Mul(a, b)
	return &out
}

// Backward computes (grad @ B^T, A^T @ grad).
func (MatMulOp) Backward(ctx *autodiff.Context[*mat.Dense], d *mat.Dense) []*mat.Dense {
	saved := ctx.SavedTensors()
	a, b := saved[0], saved[1]

	var gradA, gradB mat.Dense
	gradA.Mul(d, b.T())
	gradB.Mul(a.T(), d)
	return []*mat.Dense{&gradA, &gradB}
}
