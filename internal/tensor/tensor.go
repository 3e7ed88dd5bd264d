// Package tensor implements matrix-valued graph nodes backed by gonum.
//
// Tensor satisfies the same autodiff.Variable contract as scalar.Scalar, with
// *mat.Dense as the gradient type. Leaves accumulate gradients of the same
// shape as their value.
//
// Example:
//
//	w := tensor.New(2, 2, []float64{1, 2, 3, 4})
//	x := tensor.Constant(2, 1, []float64{1, 1})
//	loss := w.MatMul(x).ReLU().Sum()
//	_ = loss.Backward(nil)
//	fmt.Println(mat.Formatted(w.Grad()))
package tensor

import (
	"fmt"

	"github.com/born-ml/backprop/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// Verify that Tensor implements Variable.
var _ autodiff.Variable[*mat.Dense] = (*Tensor)(nil)

// History records how a Tensor was produced. A leaf has a History with no
// LastFn. A constant has no History.
type History struct {
	LastFn Function
	Ctx    *autodiff.Context[*mat.Dense]
	Inputs []*Tensor
}

// Tensor is a dense float64 matrix that participates in a computation graph.
type Tensor struct {
	id      int64
	value   *mat.Dense
	grad    *mat.Dense // nil until the first accumulation
	history *History
}

// New creates an r×c leaf from row-major data. data is copied.
func New(r, c int, data []float64) *Tensor {
	return newTensor(denseFrom(r, c, data), &History{})
}

// Constant creates an r×c tensor detached from gradient flow.
func Constant(r, c int, data []float64) *Tensor {
	return newTensor(denseFrom(r, c, data), nil)
}

// FromMatrix creates a leaf holding a copy of m.
func FromMatrix(m mat.Matrix) *Tensor {
	return newTensor(mat.DenseCopyOf(m), &History{})
}

func newTensor(v *mat.Dense, h *History) *Tensor {
	return &Tensor{
		id:      autodiff.NextID(),
		value:   v,
		history: h,
	}
}

func denseFrom(r, c int, data []float64) *mat.Dense {
	if len(data) != r*c {
		panic(fmt.Sprintf("tensor: %d values for a %dx%d tensor", len(data), r, c))
	}
	return mat.NewDense(r, c, append([]float64(nil), data...))
}

// Value returns the forward value. Callers must not modify it.
func (t *Tensor) Value() *mat.Dense {
	return t.value
}

// Dims returns the number of rows and columns.
func (t *Tensor) Dims() (r, c int) {
	return t.value.Dims()
}

// Grad returns the accumulated gradient, or nil when none was accumulated.
func (t *Tensor) Grad() *mat.Dense {
	return t.grad
}

// ZeroGrad clears the accumulated gradient.
func (t *Tensor) ZeroGrad() {
	t.grad = nil
}

// History returns the recorded history, or nil for constants.
func (t *Tensor) History() *History {
	return t.history
}

// Detach returns a constant with a copy of the value.
func (t *Tensor) Detach() *Tensor {
	return newTensor(mat.DenseCopyOf(t.value), nil)
}

// UniqueID returns the node id.
func (t *Tensor) UniqueID() int64 {
	return t.id
}

// IsLeaf reports whether t was created by the user rather than a Function.
func (t *Tensor) IsLeaf() bool {
	return t.history != nil && t.history.LastFn == nil
}

// IsConstant reports whether t is detached from gradient flow.
func (t *Tensor) IsConstant() bool {
	return t.history == nil
}

// Parents returns the inputs t was computed from.
func (t *Tensor) Parents() []autodiff.Variable[*mat.Dense] {
	if t.history == nil {
		return nil
	}
	parents := make([]autodiff.Variable[*mat.Dense], len(t.history.Inputs))
	for i, in := range t.history.Inputs {
		parents[i] = in
	}
	return parents
}

// ChainRule runs the producing Function's backward pass and pairs each
// non-constant input with its contribution.
func (t *Tensor) ChainRule(dOutput *mat.Dense) []autodiff.Partial[*mat.Dense] {
	h := t.history
	if h == nil || h.LastFn == nil {
		panic("tensor: chain rule on a tensor without a producing function")
	}

	grads := h.LastFn.Backward(h.Ctx, dOutput)
	if len(grads) != len(h.Inputs) {
		panic(fmt.Sprintf("tensor: %s backward returned %d gradients for %d inputs",
			h.LastFn.Name(), len(grads), len(h.Inputs)))
	}

	partials := make([]autodiff.Partial[*mat.Dense], 0, len(grads))
	for i, in := range h.Inputs {
		if in.IsConstant() {
			continue
		}
		partials = append(partials, autodiff.Partial[*mat.Dense]{Parent: in, Grad: grads[i]})
	}
	return partials
}

// AccumulateDerivative adds x to the leaf's gradient.
func (t *Tensor) AccumulateDerivative(x *mat.Dense) {
	if !t.IsLeaf() {
		panic("tensor: accumulate derivative on non-leaf")
	}
	if t.grad == nil {
		t.grad = mat.DenseCopyOf(x)
		return
	}
	t.grad.Add(t.grad, x)
}

// Backward computes gradients of t with respect to every leaf it depends on.
// A nil seed means ones in the shape of t.
//
// Gradients accumulate across calls; use ZeroGrad on the leaves between
// passes.
func (t *Tensor) Backward(seed *mat.Dense) error {
	if seed == nil {
		seed = ones(t.value.Dims())
	}
	if r, c := seed.Dims(); !sameDims(t.value, r, c) {
		rr, cc := t.value.Dims()
		return fmt.Errorf("tensor: seed is %dx%d, output is %dx%d", r, c, rr, cc)
	}
	return autodiff.Backpropagate[*mat.Dense](t, seed, AddDense)
}

// AddDense returns a new matrix a + b. It is the AddFunc for tensor graphs.
func AddDense(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Add(a, b)
	return &out
}

func ones(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDense(r, c, data)
}

func sameDims(m mat.Matrix, r, c int) bool {
	mr, mc := m.Dims()
	return mr == r && mc == c
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%v)", mat.Formatted(t.value, mat.Squeeze()))
}
