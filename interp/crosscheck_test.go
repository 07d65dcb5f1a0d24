package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ratinterp/interp"
	"github.com/katalvlaran/ratinterp/matrix"
)

// TestInterpolate_AgreesWithFloatSolve compares the exact coefficients with a
// float64 LU solve of the same Vandermonde system on small, well-conditioned data.
func TestInterpolate_AgreesWithFloatSolve(t *testing.T) {
	xs := vec(t, "-2", "-1", "0", "1", "2")
	ys := vec(t, "3", "-1", "2", "5", "1/2")
	n := len(xs)

	exact, err := interp.Interpolate(xs, ys)
	require.NoError(t, err)

	a := mat.NewDense(n, n, toFloats(flatten(interp.Vandermonde(xs))))
	b := mat.NewVecDense(n, toFloats(ys))
	var x mat.VecDense
	require.NoError(t, x.SolveVec(a, b))

	for i := 0; i < n; i++ {
		want := 0.0 // trimmed high-degree terms are zero
		if i < len(exact) {
			want, _ = exact[i].Float64()
		}
		assert.InDelta(t, want, x.AtVec(i), 1e-9, "coefficient %d", i)
	}
}

func flatten(m matrix.Matrix) matrix.Vector {
	var out matrix.Vector
	for _, row := range m {
		out = append(out, row...)
	}

	return out
}

func toFloats(v matrix.Vector) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i], _ = x.Float64()
	}

	return out
}
