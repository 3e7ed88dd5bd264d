// Package main provides the backprop CLI.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/gradcheck"
	"github.com/born-ml/backprop/internal/optim"
	"github.com/born-ml/backprop/internal/parallel"
	"github.com/born-ml/backprop/internal/scalar"
)

const version = "v0.1.0-dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	var err error
	switch cmd {
	case "version":
		fmt.Printf("backprop %s\n", version)
	case "demo":
		err = demo()
	case "train":
		err = train(logger)
	case "check":
		err = check(logger)
	default:
		usage()
	}

	if err != nil {
		logger.Error("command failed", slog.String("command", cmd), slog.Any("error", err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("backprop - reverse-mode automatic differentiation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate z = (x + y) * x at x=2, y=3")
	fmt.Println("  train      Fit y = 2x + 1 with SGD")
	fmt.Println("  check      Compare analytic and numerical gradients")
}

// demo prints the graph order and the derivatives of the reference example.
func demo() error {
	x := scalar.New(2).Named("x")
	y := scalar.New(3).Named("y")
	s := x.Add(y).Named("s")
	z := s.Mul(x).Named("z")

	order, err := autodiff.TopologicalSort[float64](z)
	if err != nil {
		return err
	}
	fmt.Print("order:")
	for _, v := range order {
		fmt.Printf(" %s", v.(*scalar.Scalar).Name())
	}
	fmt.Println()

	if err := z.Backward(); err != nil {
		return err
	}
	dx, _ := x.Derivative()
	dy, _ := y.Derivative()
	fmt.Printf("z = %g\n", z.Value())
	fmt.Printf("dz/dx = %g\n", dx)
	fmt.Printf("dz/dy = %g\n", dy)
	return nil
}

// train fits w and b to samples of y = 2x + 1 by minimizing squared error.
func train(logger *slog.Logger) error {
	w := scalar.New(0).Named("w")
	b := scalar.New(0).Named("b")
	opt := optim.NewSGD([]*scalar.Scalar{w, b}, optim.SGDConfig{LR: 0.05, Momentum: 0.5})

	xs := []float64{-1, -0.5, 0, 0.5, 1}
	const epochs = 200

	for epoch := range epochs {
		opt.ZeroGrad()

		loss := scalar.Constant(0)
		for _, xv := range xs {
			pred := w.Mul(scalar.Constant(xv)).Add(b)
			diff := pred.Sub(scalar.Constant(2*xv + 1))
			loss = loss.Add(diff.Mul(diff))
		}

		if err := loss.Backward(); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		opt.Step()

		if epoch%20 == 0 || epoch == epochs-1 {
			logger.Info("epoch",
				slog.Int("epoch", epoch),
				slog.Float64("loss", loss.Value()),
				slog.Float64("w", w.Value()),
				slog.Float64("b", b.Value()),
			)
		}
	}

	fmt.Printf("w = %.4f, b = %.4f\n", w.Value(), b.Value())
	return nil
}

// check runs gradient sweeps over a few built-in functions.
func check(logger *slog.Logger) error {
	funcs := []struct {
		name  string
		f     gradcheck.Func
		arity int
	}{
		{"x^2", func(in ...*scalar.Scalar) *scalar.Scalar { return in[0].Mul(in[0]) }, 1},
		{"x*y + x", func(in ...*scalar.Scalar) *scalar.Scalar { return in[0].Mul(in[1]).Add(in[0]) }, 2},
		{"sigmoid(x) / y", func(in ...*scalar.Scalar) *scalar.Scalar { return in[0].Sigmoid().Div(in[1]) }, 2},
		{"relu(x) * exp(-x) + log(y)", func(in ...*scalar.Scalar) *scalar.Scalar {
			return in[0].ReLU().Mul(in[0].Neg().Exp()).Add(in[1].Log())
		}, 2},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	cfg := parallel.DefaultConfig()

	for _, fn := range funcs {
		points := gradcheck.RandomPoints(rng, 100, fn.arity, 0.1, 5)
		if err := gradcheck.Sweep(fn.f, points, cfg); err != nil {
			return fmt.Errorf("%s: %w", fn.name, err)
		}
		logger.Info("gradient check passed", slog.String("function", fn.name), slog.Int("points", len(points)))
	}
	return nil
}
