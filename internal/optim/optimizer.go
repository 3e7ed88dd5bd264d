// Package optim implements first-order optimizers over scalar parameters.
//
// Optimizers read the derivative each parameter leaf accumulated during
// Backward. The engine never clears those derivatives, so a training step is:
//
//	optimizer.ZeroGrad()
//	loss := model(params)
//	_ = loss.Backward()
//	optimizer.Step()
package optim

import "github.com/born-ml/backprop/internal/scalar"

// Optimizer is the interface implemented by all optimizers.
type Optimizer interface {
	// Step updates every parameter that has an accumulated derivative.
	// Parameters that did not take part in the last backward pass are
	// skipped.
	Step()

	// ZeroGrad clears the accumulated derivative of every parameter.
	// Without it, derivatives from successive backward passes add up.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

func zeroGrad(params []*scalar.Scalar) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
