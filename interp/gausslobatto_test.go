package interp

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polybasis/lagrange/utils"
)

// gaussLobattoNodes returns the n Legendre-Gauss-Lobatto points on [-1, 1] in
// ascending order, i.e. the zeros of (1-x^2) P'_{n-1}(x). Node generation is
// out of the library's scope, so the tests produce their own layouts, with
// the usual Newton iteration started from the Chebyshev-Lobatto points.
func gaussLobattoNodes(n int) []float64 {

	deg := n - 1

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(math.Pi * float64(i) / float64(deg))
	}

	diff := make([]float64, n)

	for it := 0; it < 100; it++ {

		for i := range x {

			// Legendre recurrence up to P_deg at x[i].
			p0, p1 := 1.0, x[i]
			for k := 2; k <= deg; k++ {
				p0, p1 = p1, ((2*float64(k)-1)*x[i]*p1-(float64(k)-1)*p0)/float64(k)
			}

			dx := (x[i]*p1 - p0) / (float64(deg+1) * p1)
			x[i] -= dx
			diff[i] = math.Abs(dx)
		}

		if utils.MaxSlice(diff) < 1e-15 {
			break
		}
	}

	sort.Float64s(x)

	return x
}

// TestGaussLobattoSine interpolates sin on 20 Gauss-Lobatto points and checks
// the reconstructed value and first derivative at x = 0.675 against sin and
// cos.
func TestGaussLobattoSine(t *testing.T) {

	nodes := gaussLobattoNodes(20)
	require.InDelta(t, -1.0, utils.MinSlice(nodes), 1e-15)
	require.InDelta(t, 1.0, utils.MaxSlice(nodes), 1e-15)

	s, err := NewNodeSet(nodes)
	require.NoError(t, err)

	values := make([]float64, s.Len())
	for j, xj := range nodes {
		values[j] = math.Sin(xj)
	}

	const x = 0.675

	y, err := s.Interpolate(values, x)
	require.NoError(t, err)
	require.InDelta(t, math.Sin(x), y, 1e-13)
	require.InDelta(t, 0.6248973167277, y, 1e-12)

	dy, err := s.InterpolateDerivative(values, x)
	require.NoError(t, err)
	require.InDelta(t, math.Cos(x), dy, 1e-13)
	require.InDelta(t, 0.7807069511324, dy, 1e-12)
}

// TestGaussLobattoMonomial interpolates f(x) = (x-1)^(N-1), a polynomial of
// degree N-1, on N Gauss-Lobatto points and checks the reconstruction and its
// derivative at the midpoints between consecutive nodes.
func TestGaussLobattoMonomial(t *testing.T) {

	for _, n := range []int{4, 8} {

		nodes := gaussLobattoNodes(n)

		s, err := NewNodeSet(nodes)
		require.NoError(t, err)

		f := func(x float64) float64 { return math.Pow(x-1, float64(n-1)) }
		df := func(x float64) float64 { return float64(n-1) * math.Pow(x-1, float64(n-2)) }

		values := make([]float64, n)
		for j, xj := range nodes {
			values[j] = f(xj)
		}

		for i := 0; i < n-1; i++ {

			x := 0.5 * (nodes[i] + nodes[i+1])

			y, err := s.Interpolate(values, x)
			require.NoError(t, err)
			require.InDelta(t, f(x), y, 2e-13)

			dy, err := s.InterpolateDerivative(values, x)
			require.NoError(t, err)
			require.InDelta(t, df(x), dy, 3e-12)
		}
	}
}
