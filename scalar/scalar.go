// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides float64 values that record the operations applied
// to them so they can be differentiated.
//
// Example:
//
//	x := scalar.New(2).Named("x")
//	y := x.Mul(x).Add(scalar.Constant(1)) // y = x² + 1
//	_ = y.Backward()
//	dx, _ := x.Derivative() // 4
package scalar

import "github.com/born-ml/backprop/internal/scalar"

// Scalar is a float64 graph node.
type Scalar = scalar.Scalar

// History records how a Scalar was produced.
type History = scalar.History

// Function is a differentiable operation on scalars.
type Function = scalar.Function

// Built-in operations, usable with Apply.
type (
	AddOp     = scalar.AddOp
	MulOp     = scalar.MulOp
	InvOp     = scalar.InvOp
	NegOp     = scalar.NegOp
	LogOp     = scalar.LogOp
	ExpOp     = scalar.ExpOp
	SigmoidOp = scalar.SigmoidOp
	ReLUOp    = scalar.ReLUOp
	LTOp      = scalar.LTOp
	EQOp      = scalar.EQOp
)

// New creates a leaf that accumulates derivatives.
func New(v float64) *Scalar {
	return scalar.New(v)
}

// Constant creates a value detached from gradient flow.
func Constant(v float64) *Scalar {
	return scalar.Constant(v)
}

// Apply runs fn on inputs and records its history.
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	return scalar.Apply(fn, inputs...)
}
