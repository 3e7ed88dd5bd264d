package autodiff

import "errors"

var (
	// ErrNilVariable is returned when a nil output is handed to the engine.
	ErrNilVariable = errors.New("autodiff: variable is nil")

	// ErrCycleDetected is returned by a sort running with the cycle guard when
	// a node is reached again while it is still being expanded.
	ErrCycleDetected = errors.New("autodiff: cycle detected")
)
