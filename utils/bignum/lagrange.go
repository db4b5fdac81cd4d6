package bignum

import (
	"fmt"
	"math/big"
)

// LagrangeBasis stores a fixed set of distinct interpolation nodes together
// with the precomputed inverse denominator products 1/prod_{i!=j}(x_j - x_i),
// all with the same precision. It is the arbitrary-precision analogue of
// interp.NodeSet and is immutable after construction.
type LagrangeBasis struct {
	prec     uint
	nodes    []*big.Float
	invDenom []*big.Float
}

// NewLagrangeBasis builds the basis for the given nodes with prec bits of
// precision. The nodes are copied and rounded to prec. At least two pairwise
// distinct nodes are required.
func NewLagrangeBasis(nodes []*big.Float, prec uint) (*LagrangeBasis, error) {

	if len(nodes) < 2 {
		return nil, fmt.Errorf("cannot NewLagrangeBasis: at least two nodes are required (have %d)", len(nodes))
	}

	b := &LagrangeBasis{
		prec:     prec,
		nodes:    make([]*big.Float, len(nodes)),
		invDenom: make([]*big.Float, len(nodes)),
	}

	for j := range nodes {
		b.nodes[j] = NewFloat(nodes[j], prec)
	}

	one := NewFloat(1, prec)
	tmp := new(big.Float).SetPrec(prec)

	for j, xj := range b.nodes {

		d := NewFloat(1, prec)
		for i, xi := range b.nodes {
			if i == j {
				continue
			}
			d.Mul(d, tmp.Sub(xj, xi))
		}

		if d.Sign() == 0 {
			return nil, fmt.Errorf("cannot NewLagrangeBasis: nodes must be pairwise distinct")
		}

		b.invDenom[j] = new(big.Float).SetPrec(prec).Quo(one, d)
	}

	return b, nil
}

// Len returns the number of nodes N.
func (b *LagrangeBasis) Len() int {
	return len(b.nodes)
}

// Evaluate returns l_j(x) = prod_{i!=j}(x - x_i) / prod_{i!=j}(x_j - x_i)
// with the precision of the basis.
func (b *LagrangeBasis) Evaluate(j int, x *big.Float) (y *big.Float) {

	if j < 0 || j >= len(b.nodes) {
		panic(fmt.Sprintf("cannot Evaluate: index %d out of range [0, %d]", j, len(b.nodes)-1))
	}

	y = NewFloat(1, b.prec)
	tmp := new(big.Float).SetPrec(b.prec)

	for i, xi := range b.nodes {
		if i == j {
			continue
		}
		y.Mul(y, tmp.Sub(x, xi))
	}

	return y.Mul(y, b.invDenom[j])
}

// EvaluateDerivative returns dl_j/dx at x with the precision of the basis,
// using the same product-rule expansion as the float64 implementation.
func (b *LagrangeBasis) EvaluateDerivative(j int, x *big.Float) (y *big.Float) {

	if j < 0 || j >= len(b.nodes) {
		panic(fmt.Sprintf("cannot EvaluateDerivative: index %d out of range [0, %d]", j, len(b.nodes)-1))
	}

	y = new(big.Float).SetPrec(b.prec)
	tmp := new(big.Float).SetPrec(b.prec)

	for i := range b.nodes {

		if i == j {
			continue
		}

		p := NewFloat(1, b.prec)
		for k, xk := range b.nodes {
			if k == j || k == i {
				continue
			}
			p.Mul(p, tmp.Sub(x, xk))
		}

		y.Add(y, p)
	}

	return y.Mul(y, b.invDenom[j])
}
