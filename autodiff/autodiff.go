// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// The engine works on any graph whose nodes implement Variable. It orders the
// nodes with TopologicalSort and pushes gradients from the output to the
// leaves with Backpropagate, summing contributions that reach a node through
// more than one path.
//
// Example:
//
//	import (
//	    "github.com/born-ml/backprop/autodiff"
//	    "github.com/born-ml/backprop/scalar"
//	)
//
//	func main() {
//	    x := scalar.New(2)
//	    y := scalar.New(3)
//	    z := x.Add(y).Mul(x) // z = (x + y) * x
//
//	    if err := autodiff.Backpropagate[float64](z, 1, autodiff.Sum[float64]); err != nil {
//	        log.Fatal(err)
//	    }
//	    dx, _ := x.Derivative() // 7
//	    dy, _ := y.Derivative() // 2
//	}
package autodiff

import (
	"log/slog"

	"github.com/born-ml/backprop/internal/autodiff"
)

// Variable is the capability set every graph node implements.
type Variable[G any] = autodiff.Variable[G]

// Partial is one gradient contribution to a parent.
type Partial[G any] = autodiff.Partial[G]

// Context stores values from a forward pass for the backward pass.
type Context[T any] = autodiff.Context[T]

// AddFunc sums two gradient contributions.
type AddFunc[G any] = autodiff.AddFunc[G]

// Number is the set of gradient types summed with +.
type Number = autodiff.Number

// Float is the set of types accepted by CentralDifference.
type Float = autodiff.Float

// Config controls engine behavior.
type Config = autodiff.Config

// Option configures a sort or backward pass.
type Option = autodiff.Option

// DefaultEpsilon is the central difference step used by gradient checks.
const DefaultEpsilon = autodiff.DefaultEpsilon

var (
	// ErrNilVariable is returned for a nil output.
	ErrNilVariable = autodiff.ErrNilVariable

	// ErrCycleDetected is returned by a guarded sort on a cyclic graph.
	ErrCycleDetected = autodiff.ErrCycleDetected
)

// NewContext creates a forward-pass context.
func NewContext[T any](noGrad bool) *Context[T] {
	return autodiff.NewContext[T](noGrad)
}

// NextID allocates a process-unique node id.
func NextID() int64 {
	return autodiff.NextID()
}

// Sum adds two numeric gradients.
func Sum[G Number](a, b G) G {
	return autodiff.Sum(a, b)
}

// DefaultConfig returns the trust-the-caller configuration.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// WithCycleGuard enables cycle detection.
func WithCycleGuard() Option {
	return autodiff.WithCycleGuard()
}

// WithLogger sets the logger for debug events.
func WithLogger(logger *slog.Logger) Option {
	return autodiff.WithLogger(logger)
}

// TopologicalSort returns the non-constant nodes reachable from output,
// output first, every node before its parents.
func TopologicalSort[G any](output Variable[G], opts ...Option) ([]Variable[G], error) {
	return autodiff.TopologicalSort(output, opts...)
}

// Backpropagate accumulates the derivative of output into every reachable
// leaf.
func Backpropagate[G any](output Variable[G], seed G, add AddFunc[G], opts ...Option) error {
	return autodiff.Backpropagate(output, seed, add, opts...)
}

// CentralDifference numerically approximates ∂f/∂vals[arg].
func CentralDifference[T Float](f func(vals ...T) T, arg int, epsilon T, vals ...T) T {
	return autodiff.CentralDifference(f, arg, epsilon, vals...)
}
