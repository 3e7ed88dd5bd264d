// Package autodiff implements reverse-mode automatic differentiation over
// dynamically built computation graphs.
//
// The engine does not know how any operation computes its forward value or its
// local derivative. It only depends on the Variable capability set: every graph
// node exposes a stable id, whether it is a leaf or a constant, its parents, a
// chain rule and a leaf-only gradient accumulator.
//
// Architecture:
//   - Variable: the contract every node satisfies (scalar, matrix, ...)
//   - Context: per-operation record of values saved for the backward pass
//   - TopologicalSort: iterative post-order DFS, output first
//   - Backpropagate: walks the sorted order and sums contributions per node
//   - CentralDifference: numerical oracle for tests
//
// Usage:
//
//	x := scalar.New(2)
//	y := scalar.New(3)
//	z := x.Add(y).Mul(x) // z = (x + y) * x
//
//	err := autodiff.Backpropagate[float64](z, 1.0, autodiff.Sum[float64])
//	dx, _ := x.Derivative() // 2x + y = 7
package autodiff

// Number is the set of gradient types that can be summed with the + operator.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is the set of floating-point types accepted by CentralDifference.
type Float interface {
	~float32 | ~float64
}

// AddFunc sums two gradient contributions flowing into the same node.
type AddFunc[G any] func(a, b G) G

// Sum is the AddFunc for plain numeric gradients.
func Sum[G Number](a, b G) G {
	return a + b
}
