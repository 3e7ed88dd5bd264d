// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides differentiable dense matrices backed by gonum.
//
// Example:
//
//	w := tensor.New(2, 2, []float64{1, 2, 3, 4})
//	x := tensor.Constant(2, 1, []float64{1, 2})
//	loss := w.MatMul(x).Sum()
//	_ = loss.Backward(nil)
//	fmt.Println(mat.Formatted(w.Grad())) // [1 2; 1 2]
package tensor

import (
	"github.com/born-ml/backprop/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Tensor is a matrix graph node.
type Tensor = tensor.Tensor

// History records how a Tensor was produced.
type History = tensor.History

// Function is a differentiable operation on matrices.
type Function = tensor.Function

// Built-in operations, usable with Apply.
type (
	AddOp     = tensor.AddOp
	SubOp     = tensor.SubOp
	MulElemOp = tensor.MulElemOp
	MatMulOp  = tensor.MatMulOp
	SumOp     = tensor.SumOp
	ReLUOp    = tensor.ReLUOp
	ExpOp     = tensor.ExpOp
)

// New creates an r×c leaf from row-major data.
func New(r, c int, data []float64) *Tensor {
	return tensor.New(r, c, data)
}

// Constant creates an r×c tensor detached from gradient flow.
func Constant(r, c int, data []float64) *Tensor {
	return tensor.Constant(r, c, data)
}

// FromMatrix creates a leaf holding a copy of m.
func FromMatrix(m mat.Matrix) *Tensor {
	return tensor.FromMatrix(m)
}

// Apply runs fn on inputs and records its history.
func Apply(fn Function, inputs ...*Tensor) *Tensor {
	return tensor.Apply(fn, inputs...)
}

// AddDense sums two matrix gradients.
func AddDense(a, b *mat.Dense) *mat.Dense {
	return tensor.AddDense(a, b)
}
