package autodiff_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

// TestCentralDifference_Functions tests the approximation against known
// derivatives.
func TestCentralDifference_Functions(t *testing.T) {
	tests := []struct {
		name string
		f    func(v ...float64) float64
		grad func(v ...float64) []float64
	}{
		{
			name: "x^2",
			f:    func(v ...float64) float64 { return v[0] * v[0] },
			grad: func(v ...float64) []float64 { return []float64{2 * v[0]} },
		},
		{
			name: "x*y + x",
			f:    func(v ...float64) float64 { return v[0]*v[1] + v[0] },
			grad: func(v ...float64) []float64 { return []float64{v[1] + 1, v[0]} },
		},
		{
			name: "exp(x) * sin(y)",
			f:    func(v ...float64) float64 { return math.Exp(v[0]) * math.Sin(v[1]) },
			grad: func(v ...float64) []float64 {
				return []float64{math.Exp(v[0]) * math.Sin(v[1]), math.Exp(v[0]) * math.Cos(v[1])}
			},
		},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 20 {
				vals := []float64{rng.Float64()*4 - 2, rng.Float64()*4 - 2}
				want := tt.grad(vals...)
				for arg := range want {
					got := autodiff.CentralDifference(tt.f, arg, autodiff.DefaultEpsilon, vals...)
					assert.InDelta(t, want[arg], got, 1e-4, "arg %d at %v", arg, vals)
				}
			}
		})
	}
}

// TestCentralDifference_MatchesGonum tests agreement with gonum's central
// finite-difference formula.
func TestCentralDifference_MatchesGonum(t *testing.T) {
	f := func(v ...float64) float64 { return v[0]*v[0]*v[1] + math.Log(v[1]) }
	vals := []float64{1.3, 2.7}

	settings := &fd.Settings{Formula: fd.Central, Step: autodiff.DefaultEpsilon}
	want := fd.Gradient(nil, func(x []float64) float64 { return f(x...) }, vals, settings)

	for arg := range vals {
		got := autodiff.CentralDifference(f, arg, autodiff.DefaultEpsilon, vals...)
		assert.InDelta(t, want[arg], got, 1e-6)
	}
}

// TestCentralDifference_DoesNotMutate tests that the input values are left
// alone.
func TestCentralDifference_DoesNotMutate(t *testing.T) {
	vals := []float64{1, 2, 3}
	f := func(v ...float64) float64 { return v[0] + v[1] + v[2] }

	got := autodiff.CentralDifference(f, 1, 1e-3, vals...)

	assert.InDelta(t, 1.0, got, 1e-9)
	assert.Equal(t, []float64{1, 2, 3}, vals)
}

// TestCentralDifference_Float32 tests the float32 instantiation.
func TestCentralDifference_Float32(t *testing.T) {
	f := func(v ...float32) float32 { return v[0] * v[0] }
	got := autodiff.CentralDifference(f, 0, 1e-2, float32(3))
	assert.InDelta(t, 6.0, float64(got), 1e-2)
}

// TestCentralDifference_ArgOutOfRange tests the programming-error panic.
func TestCentralDifference_ArgOutOfRange(t *testing.T) {
	f := func(v ...float64) float64 { return v[0] }
	assert.Panics(t, func() { autodiff.CentralDifference(f, 1, 1e-6, 1.0) })
	assert.Panics(t, func() { autodiff.CentralDifference(f, -1, 1e-6, 1.0) })
}

// TestSum tests the numeric adder.
func TestSum(t *testing.T) {
	assert.Equal(t, 5, autodiff.Sum(2, 3))
	assert.InDelta(t, 0.75, autodiff.Sum(0.5, 0.25), 1e-12)
}

// TestNextID tests that ids are unique and increasing.
func TestNextID(t *testing.T) {
	a := autodiff.NextID()
	b := autodiff.NextID()
	assert.Greater(t, b, a)
	assert.Positive(t, a)
}
