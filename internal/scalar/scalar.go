// Package scalar implements float64 graph nodes on top of the autodiff engine.
//
// A Scalar is one of three kinds:
//   - leaf: created with New, has an empty history and accumulates a derivative
//   - constant: created with Constant or Detach, has no history at all
//   - intermediate: produced by applying a Function to other scalars
//
// Example:
//
//	x := scalar.New(2)
//	y := scalar.New(3)
//	z := x.Add(y).Mul(x)
//	_ = z.Backward()
//	dx, _ := x.Derivative() // 7
package scalar

import (
	"fmt"

	"github.com/born-ml/backprop/internal/autodiff"
)

// Verify that Scalar implements Variable.
var _ autodiff.Variable[float64] = (*Scalar)(nil)

// History records how a Scalar was produced. A leaf has a History with no
// LastFn. A constant has no History.
type History struct {
	LastFn Function                   // Function that produced the value
	Ctx    *autodiff.Context[float64] // Values saved by LastFn's forward pass
	Inputs []*Scalar                  // Inputs LastFn was applied to
}

// Scalar is a float64 value that participates in a computation graph.
type Scalar struct {
	id            int64
	data          float64
	derivative    float64
	hasDerivative bool
	history       *History
	name          string
}

// New creates a leaf scalar that requires gradients.
func New(v float64) *Scalar {
	return newScalar(v, &History{})
}

// Constant creates a scalar detached from gradient flow.
func Constant(v float64) *Scalar {
	return newScalar(v, nil)
}

func newScalar(v float64, h *History) *Scalar {
	id := autodiff.NextID()
	return &Scalar{
		id:      id,
		data:    v,
		history: h,
		name:    fmt.Sprintf("scalar%d", id),
	}
}

// Named sets a display name and returns s.
func (s *Scalar) Named(name string) *Scalar {
	s.name = name
	return s
}

// Name returns the display name.
func (s *Scalar) Name() string {
	return s.name
}

// Value returns the forward value.
func (s *Scalar) Value() float64 {
	return s.data
}

// SetValue replaces the forward value. Graphs already built from s keep the
// values saved at the time they were built.
func (s *Scalar) SetValue(v float64) {
	s.data = v
}

// History returns the recorded history, or nil for constants.
func (s *Scalar) History() *History {
	return s.history
}

// RequiresGrad reports whether gradients flow through s.
func (s *Scalar) RequiresGrad() bool {
	return s.history != nil
}

// Detach returns a constant with the same value.
func (s *Scalar) Detach() *Scalar {
	return Constant(s.data)
}

// Derivative returns the accumulated derivative and whether any was
// accumulated since creation or the last ZeroGrad.
func (s *Scalar) Derivative() (float64, bool) {
	return s.derivative, s.hasDerivative
}

// ZeroGrad clears the accumulated derivative.
func (s *Scalar) ZeroGrad() {
	s.derivative = 0
	s.hasDerivative = false
}

// UniqueID returns the node id.
func (s *Scalar) UniqueID() int64 {
	return s.id
}

// IsLeaf reports whether s was created by the user rather than a Function.
func (s *Scalar) IsLeaf() bool {
	return s.history != nil && s.history.LastFn == nil
}

// IsConstant reports whether s is detached from gradient flow.
func (s *Scalar) IsConstant() bool {
	return s.history == nil
}

// Parents returns the inputs s was computed from.
func (s *Scalar) Parents() []autodiff.Variable[float64] {
	if s.history == nil {
		return nil
	}
	parents := make([]autodiff.Variable[float64], len(s.history.Inputs))
	for i, in := range s.history.Inputs {
		parents[i] = in
	}
	return parents
}

// ChainRule runs the producing Function's backward pass and pairs each
// non-constant input with its contribution.
func (s *Scalar) ChainRule(dOutput float64) []autodiff.Partial[float64] {
	h := s.history
	if h == nil || h.LastFn == nil {
		panic(fmt.Sprintf("scalar: chain rule on %s without a producing function", s.name))
	}

	grads := h.LastFn.Backward(h.Ctx, dOutput)
	if len(grads) != len(h.Inputs) {
		panic(fmt.Sprintf("scalar: %s backward returned %d gradients for %d inputs",
			h.LastFn.Name(), len(grads), len(h.Inputs)))
	}

	partials := make([]autodiff.Partial[float64], 0, len(grads))
	for i, in := range h.Inputs {
		if in.IsConstant() {
			continue
		}
		partials = append(partials, autodiff.Partial[float64]{Parent: in, Grad: grads[i]})
	}
	return partials
}

// AccumulateDerivative adds x to the leaf's derivative.
func (s *Scalar) AccumulateDerivative(x float64) {
	if !s.IsLeaf() {
		panic(fmt.Sprintf("scalar: accumulate derivative on non-leaf %s", s.name))
	}
	s.derivative += x
	s.hasDerivative = true
}

// Backward computes derivatives of s with respect to every leaf it depends
// on. The seed defaults to 1.
//
// Derivatives accumulate across calls; use ZeroGrad on the leaves between
// passes.
func (s *Scalar) Backward(seed ...float64) error {
	d := 1.0
	if len(seed) > 0 {
		d = seed[0]
	}
	return autodiff.Backpropagate[float64](s, d, autodiff.Sum[float64])
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%g)", s.data)
}
