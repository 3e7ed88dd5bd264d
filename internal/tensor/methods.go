package tensor

// Add returns t + other.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return Apply(AddOp{}, t, other)
}

// Sub returns t - other.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return Apply(SubOp{}, t, other)
}

// MulElem returns the element-wise product t ∘ other.
func (t *Tensor) MulElem(other *Tensor) *Tensor {
	return Apply(MulElemOp{}, t, other)
}

// MatMul returns the matrix product t @ other.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return Apply(MatMulOp{}, t, other)
}

// Sum returns the 1×1 sum of all elements.
func (t *Tensor) Sum() *Tensor {
	return Apply(SumOp{}, t)
}

// ReLU returns max(0, t) element-wise.
func (t *Tensor) ReLU() *Tensor {
	return Apply(ReLUOp{}, t)
}

// Exp returns e^t element-wise.
func (t *Tensor) Exp() *Tensor {
	return Apply(ExpOp{}, t)
}
