package autodiff

import "slices"

// Context is the forward-pass record of a single operation invocation.
//
// Operations call SaveForBackward during forward with whatever their backward
// pass needs, and read it back with SavedTensors. When the operation was
// invoked without gradient tracking, saving is suppressed so nothing is kept
// alive needlessly.
//
// A Context is created fresh per invocation and owned by the node it produced.
type Context[T any] struct {
	noGrad      bool
	savedValues []T
}

// NewContext creates a context. noGrad is fixed for the context's lifetime.
func NewContext[T any](noGrad bool) *Context[T] {
	return &Context[T]{noGrad: noGrad}
}

// NoGrad reports whether gradient tracking was disabled for this invocation.
func (c *Context[T]) NoGrad() bool {
	return c.noGrad
}

// SaveForBackward stores values for the backward pass.
// It is a no-op when NoGrad is set. A later call replaces the earlier values.
func (c *Context[T]) SaveForBackward(values ...T) {
	if c.noGrad {
		return
	}
	c.savedValues = slices.Clone(values)
}

// SavedTensors returns a copy of the saved values, or an empty slice if
// nothing was saved.
func (c *Context[T]) SavedTensors() []T {
	return slices.Clone(c.savedValues)
}
