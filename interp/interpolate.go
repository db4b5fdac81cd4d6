package interp

import (
	"fmt"
)

// Interpolate reconstructs at x the interpolant of the sampled values,
//
//	p(x) = sum_j values[j] * l_j(x),
//
// where values[j] is the sampled function value at the j-th node. The
// interpolant is the unique polynomial of degree at most N-1 matching the
// values at the nodes.
func (s NodeSet) Interpolate(values []float64, x float64) (float64, error) {

	if len(values) != len(s.nodes) {
		return 0, fmt.Errorf("cannot Interpolate: have %d values for %d nodes", len(values), len(s.nodes))
	}

	var y float64
	for j := range s.records {
		y += values[j] * s.records[j].Evaluate(x)
	}

	return y, nil
}

// InterpolateDerivative reconstructs at x the first derivative of the
// interpolant of the sampled values, sum_j values[j] * l_j'(x).
func (s NodeSet) InterpolateDerivative(values []float64, x float64) (float64, error) {

	if len(values) != len(s.nodes) {
		return 0, fmt.Errorf("cannot InterpolateDerivative: have %d values for %d nodes", len(values), len(s.nodes))
	}

	var y float64
	for j := range s.records {
		y += values[j] * s.records[j].EvaluateDerivative(x)
	}

	return y, nil
}
