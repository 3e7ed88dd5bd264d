package autodiff_test

import "github.com/born-ml/backprop/internal/autodiff"

// Verify that node implements Variable.
var _ autodiff.Variable[float64] = (*node)(nil)

// node is a minimal float64 graph node for exercising the engine without a
// concrete operation library. local[i] is d(node)/d(parents[i]).
type node struct {
	id       int64
	name     string
	leaf     bool
	constant bool
	parents  []*node
	local    []float64

	// dropPartials makes ChainRule forget every parent (broken operation).
	dropPartials bool

	grad       float64
	accumCalls int
}

func leaf(name string) *node {
	return &node{id: autodiff.NextID(), name: name, leaf: true}
}

func constant(name string) *node {
	return &node{id: autodiff.NextID(), name: name, constant: true}
}

func op(name string, parents []*node, local []float64) *node {
	return &node{id: autodiff.NextID(), name: name, parents: parents, local: local}
}

func (n *node) UniqueID() int64  { return n.id }
func (n *node) IsLeaf() bool     { return n.leaf }
func (n *node) IsConstant() bool { return n.constant }

func (n *node) Parents() []autodiff.Variable[float64] {
	out := make([]autodiff.Variable[float64], len(n.parents))
	for i, p := range n.parents {
		out[i] = p
	}
	return out
}

func (n *node) ChainRule(d float64) []autodiff.Partial[float64] {
	if n.dropPartials {
		return nil
	}
	out := make([]autodiff.Partial[float64], 0, len(n.parents))
	for i, p := range n.parents {
		if p.constant {
			continue
		}
		out = append(out, autodiff.Partial[float64]{Parent: p, Grad: d * n.local[i]})
	}
	return out
}

func (n *node) AccumulateDerivative(x float64) {
	if !n.leaf {
		panic("accumulate on non-leaf " + n.name)
	}
	n.grad += x
	n.accumCalls++
}

// names returns node names in order, for readable assertions.
func names(order []autodiff.Variable[float64]) []string {
	out := make([]string, len(order))
	for i, v := range order {
		out[i] = v.(*node).name
	}
	return out
}

// indexOf maps node ids to their positions in order.
func indexOf(order []autodiff.Variable[float64]) map[int64]int {
	idx := make(map[int64]int, len(order))
	for i, v := range order {
		idx[v.UniqueID()] = i
	}
	return idx
}
