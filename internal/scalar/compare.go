package scalar

import "github.com/born-ml/backprop/internal/autodiff"

// LTOp computes 1 if a < b, else 0. It is flat almost everywhere, so both
// gradients are zero.
type LTOp struct{}

// Name returns "lt".
func (LTOp) Name() string { return "lt" }

// Forward computes a < b as 1 or 0.
func (LTOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	if inputs[0] < inputs[1] {
		return 1
	}
	return 0
}

// Backward returns zero gradients.
func (LTOp) Backward(_ *autodiff.Context[float64], _ float64) []float64 {
	return []float64{0, 0}
}

// EQOp computes 1 if a == b, else 0. Gradients are zero.
type EQOp struct{}

// Name returns "eq".
func (EQOp) Name() string { return "eq" }

// Forward computes a == b as 1 or 0.
func (EQOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	if inputs[0] == inputs[1] {
		return 1
	}
	return 0
}

// Backward returns zero gradients.
func (EQOp) Backward(_ *autodiff.Context[float64], _ float64) []float64 {
	return []float64{0, 0}
}
