package autodiff

import (
	"fmt"
	"log/slog"
	"slices"
)

// TopologicalSort orders every non-constant node reachable from output.
//
// The result starts with output and every node appears before all of its
// parents, which is the order Backpropagate consumes it in. Reversing it gives
// the forward (dependencies first) order. Constants are never included, and a
// node reachable through several paths appears exactly once.
//
// The traversal uses an explicit stack, so chain depth is bounded by memory,
// not by the goroutine stack. Without WithCycleGuard a cyclic graph never
// terminates.
//
// Errors:
//   - ErrNilVariable    if output is nil.
//   - ErrCycleDetected  if the cycle guard is enabled and a cycle is found.
func TopologicalSort[G any](output Variable[G], opts ...Option) ([]Variable[G], error) {
	cfg := resolveConfig(opts)
	order, err := topologicalSort(output, cfg)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("topological sort complete", slog.Int("nodes", len(order)))
	return order, nil
}

// sorter holds the bookkeeping of a single sort.
type sorter[G any] struct {
	visited map[int64]struct{}
	onStack map[int64]struct{} // only maintained with the cycle guard
	stack   []Variable[G]
	order   []Variable[G]
	guard   bool
}

func topologicalSort[G any](output Variable[G], cfg Config) ([]Variable[G], error) {
	if output == nil {
		return nil, ErrNilVariable
	}

	s := &sorter[G]{
		visited: make(map[int64]struct{}),
		guard:   cfg.CycleGuard,
	}
	if s.guard {
		s.onStack = make(map[int64]struct{})
	}
	s.push(output)

	for len(s.stack) > 0 {
		if err := s.step(); err != nil {
			return nil, err
		}
	}

	// order holds post-order completion; flip it so output comes first.
	slices.Reverse(s.order)
	return s.order, nil
}

// step inspects the top of the stack and advances the traversal by one move.
func (s *sorter[G]) step() error {
	node := s.stack[len(s.stack)-1]
	id := node.UniqueID()

	if node.IsConstant() {
		s.visited[id] = struct{}{}
		s.pop()
		return nil
	}

	_, seen := s.visited[id]
	if node.IsLeaf() || seen {
		s.order = append(s.order, node)
		s.pop()
		if node.IsLeaf() {
			s.visited[id] = struct{}{}
		}
		return nil
	}

	for _, parent := range node.Parents() {
		pid := parent.UniqueID()
		if _, ok := s.visited[pid]; ok {
			continue
		}
		if s.guard {
			if _, ok := s.onStack[pid]; ok {
				return fmt.Errorf("%w: node %d is reachable from itself", ErrCycleDetected, pid)
			}
		}
		// The current node stays on the stack and is revisited once the
		// parent is resolved.
		s.push(parent)
		return nil
	}

	// All parents resolved: the next step emits this node.
	s.visited[id] = struct{}{}
	return nil
}

func (s *sorter[G]) push(v Variable[G]) {
	s.stack = append(s.stack, v)
	if s.guard {
		s.onStack[v.UniqueID()] = struct{}{}
	}
}

func (s *sorter[G]) pop() {
	top := s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	if s.guard {
		delete(s.onStack, top.UniqueID())
	}
}
