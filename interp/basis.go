package interp

// NodeRecord holds the auxiliary data precomputed for one node x_j of a
// NodeSet: the N-1 remaining nodes, the (N-1)x(N-2) exclusion table consumed
// by the derivative rule, and the inverse of the denominator product
// prod_{i!=j}(x_j - x_i).
type NodeRecord struct {
	others   []float64   // nodes with x_j removed, original order
	excl     [][]float64 // row k: others with its k-th element removed
	invDenom float64
}

func newNodeRecord(nodes []float64, j int) (rec NodeRecord) {

	n := len(nodes)

	rec.others = make([]float64, 0, n-1)
	rec.invDenom = 1.0

	for i, xi := range nodes {
		if i == j {
			continue
		}
		rec.others = append(rec.others, xi)
		rec.invDenom /= nodes[j] - xi
	}

	rec.excl = make([][]float64, n-1)
	for k := range rec.excl {
		row := make([]float64, 0, n-2)
		row = append(row, rec.others[:k]...)
		row = append(row, rec.others[k+1:]...)
		rec.excl[k] = row
	}

	return
}

// Evaluate returns the value of the basis polynomial l_j at x:
//
//	l_j(x) = prod_{i!=j} (x - x_i) / prod_{i!=j} (x_j - x_i).
//
// By construction l_j(x_j) = 1 and l_j(x_i) = 0 for every other node x_i.
// Cost is O(N) per call.
func (rec *NodeRecord) Evaluate(x float64) float64 {
	y := 1.0
	for _, xi := range rec.others {
		y *= x - xi
	}
	return y * rec.invDenom
}

// EvaluateDerivative returns dl_j/dx at x, using the product-rule expansion
//
//	l_j'(x) = [ sum_{i!=j} prod_{k!=i,j} (x - x_k) ] / prod_{i!=j} (x_j - x_i).
//
// One term of the sum is the product over one row of the exclusion table.
// Cost is O(N^2) per call.
func (rec *NodeRecord) EvaluateDerivative(x float64) float64 {
	var sum float64
	for _, row := range rec.excl {
		p := 1.0
		for _, xk := range row {
			p *= x - xk
		}
		sum += p
	}
	return sum * rec.invDenom
}
