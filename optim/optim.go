// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for scalar parameters.
//
// # Basic Usage
//
//	w := scalar.New(0)
//	b := scalar.New(0)
//	optimizer := optim.NewSGD([]*scalar.Scalar{w, b}, optim.SGDConfig{LR: 0.05})
//
//	for range epochs {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(w, b)
//	    _ = loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/backprop/internal/optim"
	"github.com/born-ml/backprop/internal/scalar"
)

// Optimizer is the interface implemented by all optimizers.
type Optimizer = optim.Optimizer

// Config is the base optimizer configuration.
type Config = optim.Config

// SGD is Stochastic Gradient Descent with optional momentum.
type SGD = optim.SGD

// SGDConfig configures SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer.
func NewSGD(params []*scalar.Scalar, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam is the Adam optimizer.
type Adam = optim.Adam

// AdamConfig configures Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer.
func NewAdam(params []*scalar.Scalar, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
