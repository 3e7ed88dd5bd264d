package autodiff

import (
	"fmt"
	"slices"
)

// DefaultEpsilon is the perturbation used by gradient checks.
const DefaultEpsilon = 1e-6

// CentralDifference approximates the partial derivative of f with respect to
// vals[arg]:
//
//	(f(..., x+ε, ...) - f(..., x-ε, ...)) / 2ε
//
// It never touches the graph and does not modify vals. It panics if arg is
// out of range.
func CentralDifference[T Float](f func(vals ...T) T, arg int, epsilon T, vals ...T) T {
	if arg < 0 || arg >= len(vals) {
		panic(fmt.Sprintf("central difference: arg %d out of range for %d values", arg, len(vals)))
	}

	plus := slices.Clone(vals)
	minus := slices.Clone(vals)
	plus[arg] += epsilon
	minus[arg] -= epsilon

	return (f(plus...) - f(minus...)) / (2 * epsilon)
}
