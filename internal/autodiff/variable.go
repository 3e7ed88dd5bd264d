package autodiff

import "sync/atomic"

// Variable is the capability set the engine requires from a graph node.
//
// G is the gradient type flowing through the graph (float64 for scalars,
// *mat.Dense for matrices, ...).
//
// Contract:
//   - UniqueID is assigned once at construction and never changes. It is the
//     only key used for visitation and gradient bookkeeping.
//   - A node is either a leaf or has at least one non-constant parent.
//   - Constants are detached from gradient flow: they are never visited,
//     never receive gradients and never appear in a sort result.
//   - The graph reachable through Parents is acyclic.
//   - AccumulateDerivative is only ever called on leaves. It adds to the
//     persisted gradient and never clears it; resetting between passes is the
//     caller's job.
type Variable[G any] interface {
	// UniqueID returns the stable process-unique identity of the node.
	UniqueID() int64

	// IsLeaf reports whether the node has no recorded history.
	IsLeaf() bool

	// IsConstant reports whether the node is excluded from differentiation.
	IsConstant() bool

	// Parents returns the immediate inputs of the node's forward computation.
	Parents() []Variable[G]

	// ChainRule maps the gradient flowing into this node to one contribution
	// per parent, using the node's own local derivative.
	ChainRule(dOutput G) []Partial[G]

	// AccumulateDerivative adds x into the leaf's persisted gradient.
	AccumulateDerivative(x G)
}

// Partial is a single gradient contribution to a parent, as produced by
// Variable.ChainRule.
type Partial[G any] struct {
	Parent Variable[G]
	Grad   G
}

var lastID atomic.Int64

// NextID returns a new process-unique node id. Ids start at 1 and are safe to
// allocate from multiple goroutines.
func NextID() int64 {
	return lastID.Add(1)
}
