package scalar

import "github.com/born-ml/backprop/internal/autodiff"

// NegOp computes -a.
type NegOp struct{}

// Name returns "neg".
func (NegOp) Name() string { return "neg" }

// Forward computes -a.
func (NegOp) Forward(_ *autodiff.Context[float64], inputs ...float64) float64 {
	return -inputs[0]
}

// Backward computes -d.
func (NegOp) Backward(_ *autodiff.Context[float64], d float64) []float64 {
	return []float64{-d}
}
