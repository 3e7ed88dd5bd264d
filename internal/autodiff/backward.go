package autodiff

import (
	"fmt"
	"log/slog"
)

// Backpropagate computes the derivative of output with respect to every leaf
// reachable from it and hands each leaf its total through
// AccumulateDerivative.
//
// seed is the gradient of the final quantity with respect to output (1 for a
// scalar loss). add sums contributions that reach the same node through
// different paths.
//
// Leaves keep their previous derivative and add to it; reset them between
// passes if accumulation is not wanted. Constants and nodes that are not
// reachable are left untouched.
//
// Returned errors come from TopologicalSort. A processed node without an
// accumulated gradient means the graph or a ChainRule implementation is
// broken, and panics.
func Backpropagate[G any](output Variable[G], seed G, add AddFunc[G], opts ...Option) error {
	cfg := resolveConfig(opts)

	order, err := topologicalSort(output, cfg)
	if err != nil {
		return fmt.Errorf("backpropagate: %w", err)
	}

	// Gradient accumulator keyed by node id, owned by this call only.
	grads := make(map[int64]G, len(order))
	grads[output.UniqueID()] = seed

	leaves := 0
	for _, node := range order {
		id := node.UniqueID()
		grad, ok := grads[id]
		if !ok {
			panic(fmt.Sprintf("backpropagate: no gradient for node %d (malformed graph)", id))
		}

		if node.IsLeaf() {
			node.AccumulateDerivative(grad)
			leaves++
			continue
		}

		for _, p := range node.ChainRule(grad) {
			pid := p.Parent.UniqueID()
			if existing, ok := grads[pid]; ok {
				grads[pid] = add(existing, p.Grad)
			} else {
				grads[pid] = p.Grad
			}
		}
	}

	cfg.Logger.Debug("backpropagate complete",
		slog.Int("nodes", len(order)),
		slog.Int("leaves", leaves),
	)
	return nil
}
