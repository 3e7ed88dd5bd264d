package optim

import (
	"math"

	"github.com/born-ml/backprop/internal/scalar"
)

// Verify that Adam implements Optimizer.
var _ Optimizer = (*Adam)(nil)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*scalar.Scalar
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int               // Timestep for bias correction
	m      map[int64]float64 // First moment estimates
	v      map[int64]float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Running average coefficients (default: [0.9, 0.999])
	Eps   float64    // Numerical stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer. Zero config fields take defaults.
func NewAdam(params []*scalar.Scalar, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas == [2]float64{} {
		config.Betas = [2]float64{0.9, 0.999}
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[int64]float64),
		v:      make(map[int64]float64),
	}
}

// Step applies one bias-corrected update to every parameter with a
// derivative.
func (a *Adam) Step() {
	a.t++
	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, p := range a.params {
		grad, ok := p.Derivative()
		if !ok {
			continue
		}

		id := p.UniqueID()
		m := a.beta1*a.m[id] + (1-a.beta1)*grad
		v := a.beta2*a.v[id] + (1-a.beta2)*grad*grad
		a.m[id], a.v[id] = m, v

		p.SetValue(p.Value() - a.lr*(m/c1)/(math.Sqrt(v/c2)+a.eps))
	}
}

// ZeroGrad clears derivatives of all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrad(a.params)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int {
	return a.t
}
