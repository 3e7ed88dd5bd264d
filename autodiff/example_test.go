package autodiff_test

import (
	"fmt"

	"github.com/born-ml/backprop/autodiff"
	"github.com/born-ml/backprop/scalar"
	"github.com/born-ml/backprop/tensor"
	"gonum.org/v1/gonum/mat"
)

func ExampleBackpropagate() {
	x := scalar.New(2)
	y := scalar.New(3)
	z := x.Add(y).Mul(x) // z = (x + y) * x

	if err := autodiff.Backpropagate[float64](z, 1, autodiff.Sum[float64]); err != nil {
		panic(err)
	}

	dx, _ := x.Derivative()
	dy, _ := y.Derivative()
	fmt.Println(z.Value(), dx, dy)
	// Output: 10 7 2
}

func ExampleTopologicalSort() {
	x := scalar.New(1).Named("x")
	h := x.Exp().Named("h")
	out := h.Mul(h).Named("sq").Add(x).Named("out")

	order, err := autodiff.TopologicalSort[float64](out)
	if err != nil {
		panic(err)
	}
	for _, v := range order {
		fmt.Println(v.(*scalar.Scalar).Name())
	}
	// Output:
	// out
	// sq
	// h
	// x
}

func ExampleBackpropagate_matrix() {
	w := tensor.New(2, 2, []float64{1, 2, 3, 4})
	x := tensor.Constant(2, 1, []float64{1, 2})
	loss := w.MatMul(x).Sum()

	if err := autodiff.Backpropagate[*mat.Dense](loss, mat.NewDense(1, 1, []float64{1}), tensor.AddDense); err != nil {
		panic(err)
	}
	fmt.Println(w.Grad().RawMatrix().Data)
	// Output: [1 2 1 2]
}

func ExampleCentralDifference() {
	f := func(v ...float64) float64 { return v[0]*v[1] + v[0] }
	d := autodiff.CentralDifference(f, 0, autodiff.DefaultEpsilon, 2, 3)
	fmt.Printf("%.4f\n", d)
	// Output: 4.0000
}
