package scalar

// Add returns s + other.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return Apply(AddOp{}, s, other)
}

// Sub returns s - other, built as s + (-other).
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return s.Add(other.Neg())
}

// Mul returns s * other.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return Apply(MulOp{}, s, other)
}

// Div returns s / other, built as s * (1/other).
func (s *Scalar) Div(other *Scalar) *Scalar {
	return s.Mul(other.Inv())
}

// Neg returns -s.
func (s *Scalar) Neg() *Scalar {
	return Apply(NegOp{}, s)
}

// Inv returns 1/s.
func (s *Scalar) Inv() *Scalar {
	return Apply(InvOp{}, s)
}

// Log returns ln(s).
func (s *Scalar) Log() *Scalar {
	return Apply(LogOp{}, s)
}

// Exp returns e^s.
func (s *Scalar) Exp() *Scalar {
	return Apply(ExpOp{}, s)
}

// Sigmoid returns 1 / (1 + e^-s).
func (s *Scalar) Sigmoid() *Scalar {
	return Apply(SigmoidOp{}, s)
}

// ReLU returns max(0, s).
func (s *Scalar) ReLU() *Scalar {
	return Apply(ReLUOp{}, s)
}

// LT returns 1 if s < other, else 0.
func (s *Scalar) LT(other *Scalar) *Scalar {
	return Apply(LTOp{}, s, other)
}

// GT returns 1 if s > other, else 0.
func (s *Scalar) GT(other *Scalar) *Scalar {
	return Apply(LTOp{}, other, s)
}

// EQ returns 1 if s == other, else 0.
func (s *Scalar) EQ(other *Scalar) *Scalar {
	return Apply(EQOp{}, s, other)
}
