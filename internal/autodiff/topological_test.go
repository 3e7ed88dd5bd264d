package autodiff_test

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopologicalSort_Chain tests a straight line x -> a -> b.
func TestTopologicalSort_Chain(t *testing.T) {
	x := leaf("x")
	a := op("a", []*node{x}, []float64{1})
	b := op("b", []*node{a}, []float64{1})

	order, err := autodiff.TopologicalSort[float64](b)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "x"}, names(order))
}

// TestTopologicalSort_Diamond tests that a node reached by two paths is
// emitted once and after both of its consumers.
func TestTopologicalSort_Diamond(t *testing.T) {
	//      x
	//     / \
	//    a   b
	//     \ /
	//      y
	x := leaf("x")
	a := op("a", []*node{x}, []float64{1})
	b := op("b", []*node{x}, []float64{1})
	y := op("y", []*node{a, b}, []float64{1, 1})

	order, err := autodiff.TopologicalSort[float64](y)
	require.NoError(t, err)
	require.Len(t, order, 4)

	idx := indexOf(order)
	assert.Equal(t, 0, idx[y.id])
	assert.Equal(t, 3, idx[x.id])
	assert.Less(t, idx[y.id], idx[a.id])
	assert.Less(t, idx[y.id], idx[b.id])
	assert.Less(t, idx[a.id], idx[x.id])
	assert.Less(t, idx[b.id], idx[x.id])
}

// TestTopologicalSort_SameParentTwice tests x*x style nodes.
func TestTopologicalSort_SameParentTwice(t *testing.T) {
	x := leaf("x")
	sq := op("sq", []*node{x, x}, []float64{2, 2})

	order, err := autodiff.TopologicalSort[float64](sq)
	require.NoError(t, err)
	assert.Equal(t, []string{"sq", "x"}, names(order))
}

// TestTopologicalSort_SharedInterior tests dedup of a non-leaf shared node.
func TestTopologicalSort_SharedInterior(t *testing.T) {
	x := leaf("x")
	y := leaf("y")
	s := op("s", []*node{x, y}, []float64{1, 1})
	p := op("p", []*node{s}, []float64{1})
	q := op("q", []*node{s, x}, []float64{1, 1})
	out := op("out", []*node{p, q}, []float64{1, 1})

	order, err := autodiff.TopologicalSort[float64](out)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"out", "p", "q", "s", "x", "y"}, names(order))
	assertValidOrder(t, out, order)
}

// TestTopologicalSort_ExcludesConstants tests that constants never appear.
func TestTopologicalSort_ExcludesConstants(t *testing.T) {
	x := leaf("x")
	c := constant("c")
	a := op("a", []*node{x, c}, []float64{1, 1})
	b := op("b", []*node{a, c}, []float64{1, 1})

	order, err := autodiff.TopologicalSort[float64](b)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "x"}, names(order))
}

// TestTopologicalSort_SingleNode tests graphs that are only the output.
func TestTopologicalSort_SingleNode(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		x := leaf("x")
		order, err := autodiff.TopologicalSort[float64](x)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, names(order))
	})

	t.Run("constant", func(t *testing.T) {
		c := constant("c")
		order, err := autodiff.TopologicalSort[float64](c)
		require.NoError(t, err)
		assert.Empty(t, order)
	})
}

// TestTopologicalSort_Nil tests the nil output error.
func TestTopologicalSort_Nil(t *testing.T) {
	_, err := autodiff.TopologicalSort[float64](nil)
	assert.ErrorIs(t, err, autodiff.ErrNilVariable)
}

// TestTopologicalSort_DeepChain tests that long chains do not depend on
// recursion depth.
func TestTopologicalSort_DeepChain(t *testing.T) {
	const depth = 200_000

	x := leaf("x")
	cur := x
	for range depth {
		cur = op("n", []*node{cur}, []float64{1})
	}

	order, err := autodiff.TopologicalSort[float64](cur)
	require.NoError(t, err)
	require.Len(t, order, depth+1)
	assert.Same(t, cur, order[0])
	assert.Same(t, x, order[depth])
}

// TestTopologicalSort_RandomDAGs tests the ordering invariants on random
// graphs with shared nodes and constants.
func TestTopologicalSort_RandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := range 50 {
		out := randomDAG(rng, 3+rng.IntN(5), 5+rng.IntN(40))

		order, err := autodiff.TopologicalSort[float64](out, autodiff.WithCycleGuard())
		require.NoError(t, err, "trial %d", trial)
		assertValidOrder(t, out, order)
	}
}

// TestTopologicalSort_CycleGuard tests cycle detection when enabled.
func TestTopologicalSort_CycleGuard(t *testing.T) {
	t.Run("two nodes", func(t *testing.T) {
		x := leaf("x")
		a := op("a", []*node{x}, []float64{1})
		b := op("b", []*node{a}, []float64{1})
		a.parents = append(a.parents, b)
		a.local = append(a.local, 1)

		_, err := autodiff.TopologicalSort[float64](b, autodiff.WithCycleGuard())
		assert.ErrorIs(t, err, autodiff.ErrCycleDetected)
	})

	t.Run("self loop", func(t *testing.T) {
		a := op("a", nil, nil)
		a.parents = []*node{a}
		a.local = []float64{1}

		_, err := autodiff.TopologicalSort[float64](a, autodiff.WithCycleGuard())
		assert.ErrorIs(t, err, autodiff.ErrCycleDetected)
	})

	t.Run("diamond is not a cycle", func(t *testing.T) {
		x := leaf("x")
		a := op("a", []*node{x}, []float64{1})
		b := op("b", []*node{x, a}, []float64{1, 1})
		y := op("y", []*node{a, b}, []float64{1, 1})

		order, err := autodiff.TopologicalSort[float64](y, autodiff.WithCycleGuard())
		require.NoError(t, err)
		assert.Equal(t, []string{"y", "b", "a", "x"}, names(order))
	})
}

// randomDAG builds a graph over nLeaves leaves and nOps operations. Each
// operation has one to three non-constant parents from earlier nodes and
// sometimes a constant. The last operation is returned.
func randomDAG(rng *rand.Rand, nLeaves, nOps int) *node {
	pool := make([]*node, 0, nLeaves+nOps)
	for range nLeaves {
		pool = append(pool, leaf("leaf"))
	}

	var last *node
	for range nOps {
		k := 1 + rng.IntN(3)
		parents := make([]*node, 0, k+1)
		local := make([]float64, 0, k+1)
		for range k {
			parents = append(parents, pool[rng.IntN(len(pool))])
			local = append(local, rng.Float64())
		}
		if rng.IntN(4) == 0 {
			parents = append(parents, constant("const"))
			local = append(local, 1)
		}
		last = op("op", parents, local)
		pool = append(pool, last)
	}
	return last
}

// assertValidOrder checks that order holds exactly the non-constant nodes
// reachable from out, once each, with out first and every node before its
// parents.
func assertValidOrder(t *testing.T, out *node, order []autodiff.Variable[float64]) {
	t.Helper()

	reachable := make(map[int64]bool)
	var walk func(n *node)
	walk = func(n *node) {
		if n.constant || reachable[n.id] {
			return
		}
		reachable[n.id] = true
		for _, p := range n.parents {
			walk(p)
		}
	}
	walk(out)

	idx := indexOf(order)
	require.Len(t, idx, len(order), "duplicate nodes in order")
	require.Len(t, order, len(reachable))
	assert.Equal(t, out.id, order[0].UniqueID())

	for _, v := range order {
		n := v.(*node)
		assert.False(t, n.constant)
		assert.True(t, reachable[n.id])
		for _, p := range n.parents {
			if p.constant {
				continue
			}
			assert.Less(t, idx[n.id], idx[p.id], "child %d must precede parent %d", n.id, p.id)
		}
	}
}
