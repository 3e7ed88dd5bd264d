package optim

import "github.com/born-ml/backprop/internal/scalar"

// Verify that SGD implements Optimizer.
var _ Optimizer = (*SGD)(nil)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*scalar.Scalar
	lr         float64
	momentum   float64
	velocities map[int64]float64 // keyed by parameter id
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over leaf parameters.
func NewSGD(params []*scalar.Scalar, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[int64]float64),
	}
}

// Step applies one update to every parameter with a derivative.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad, ok := p.Derivative()
		if !ok {
			continue
		}

		if s.momentum == 0 {
			p.SetValue(p.Value() - s.lr*grad)
			continue
		}

		v := s.momentum*s.velocities[p.UniqueID()] + grad
		s.velocities[p.UniqueID()] = v
		p.SetValue(p.Value() - s.lr*v)
	}
}

// ZeroGrad clears derivatives of all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
