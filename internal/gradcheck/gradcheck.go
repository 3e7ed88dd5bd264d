// Package gradcheck validates analytic gradients against central
// differences.
package gradcheck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/parallel"
	"github.com/born-ml/backprop/internal/scalar"
	"gonum.org/v1/gonum/floats"
)

// ErrGradientMismatch is wrapped by every failed comparison.
var ErrGradientMismatch = errors.New("gradcheck: gradient mismatch")

// Func is a differentiable function of scalars. It must only combine its
// inputs through scalar operations so it can run on both leaves and
// constants.
type Func func(in ...*scalar.Scalar) *scalar.Scalar

// Tolerance bounds the accepted difference between the two gradients.
type Tolerance struct {
	Abs     float64 // Absolute tolerance
	Rel     float64 // Relative tolerance
	Epsilon float64 // Central difference step
}

// DefaultTolerance returns 1e-2 absolute and relative tolerance with the
// default central difference step.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Abs:     1e-2,
		Rel:     1e-2,
		Epsilon: autodiff.DefaultEpsilon,
	}
}

// Check compares the derivative of f with respect to each input at vals
// with the central difference, using DefaultTolerance.
func Check(f Func, vals ...float64) error {
	return CheckWith(f, DefaultTolerance(), vals...)
}

// CheckWith is Check with an explicit tolerance. All mismatching inputs are
// reported, joined into one error.
func CheckWith(f Func, tol Tolerance, vals ...float64) error {
	leaves := make([]*scalar.Scalar, len(vals))
	for i, v := range vals {
		leaves[i] = scalar.New(v)
	}

	if err := f(leaves...).Backward(); err != nil {
		return fmt.Errorf("gradcheck: backward: %w", err)
	}

	eval := func(v ...float64) float64 {
		in := make([]*scalar.Scalar, len(v))
		for i, x := range v {
			in[i] = scalar.Constant(x)
		}
		return f(in...).Value()
	}

	var errs []error
	for i, leaf := range leaves {
		got, _ := leaf.Derivative() // an unreached input has derivative 0
		want := autodiff.CentralDifference(eval, i, tol.Epsilon, vals...)
		if !floats.EqualWithinAbsOrRel(got, want, tol.Abs, tol.Rel) {
			errs = append(errs, fmt.Errorf("%w: arg %d at %v: analytic %g, numerical %g",
				ErrGradientMismatch, i, vals, got, want))
		}
	}
	return errors.Join(errs...)
}

// Sweep runs Check at every point. Each point builds its own graph, so points
// are checked concurrently according to cfg.
func Sweep(f Func, points [][]float64, cfg parallel.Config) error {
	errs := parallel.ForErr(len(points), func(i int) error {
		return Check(f, points[i]...)
	}, cfg)
	return errors.Join(errs...)
}

// RandomPoints returns n points of the given arity sampled uniformly from
// [lo, hi).
func RandomPoints(rng *rand.Rand, n, arity int, lo, hi float64) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, arity)
		for j := range p {
			p[j] = lo + rng.Float64()*(hi-lo)
		}
		points[i] = p
	}
	return points
}
