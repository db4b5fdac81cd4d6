// Package interp evaluates Lagrange interpolating polynomials and their first
// derivatives at arbitrary query points, given a fixed set of interpolation
// nodes.
//
// The package follows a precompute-then-evaluate scheme: NewNodeSet derives,
// once per distinct node layout, the auxiliary data needed to evaluate any of
// the N basis polynomials (or its first derivative) at any query point, in
// O(N) (resp. O(N^2)) floating-point operations per call and without
// revisiting node differences. A NodeSet is immutable after construction and
// safe for concurrent use by multiple goroutines.
//
// The nodes themselves (Gauss-Lobatto points, Chebyshev points, ...) are
// supplied by the caller; this package does not generate them.
package interp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/polybasis/lagrange/utils"
)

var (
	// ErrTooFewNodes is returned by NewNodeSet when fewer than two nodes are supplied.
	ErrTooFewNodes = errors.New("at least two nodes are required")

	// ErrDuplicateNodes is returned by NewNodeSet when two nodes are exactly equal.
	ErrDuplicateNodes = errors.New("nodes must be pairwise distinct")
)

// NodeSet stores a fixed set of interpolation nodes together with one
// precomputed NodeRecord per node. The zero value is not usable; a NodeSet is
// obtained from NewNodeSet and must not be modified afterwards.
type NodeSet struct {
	nodes   []float64
	records []NodeRecord
}

// NewNodeSet derives the per-node auxiliary data for the given nodes and
// returns the resulting NodeSet. The input slice is copied, so the caller may
// reuse it. The node order is preserved and defines the index used by Record,
// Interpolate and InterpolateDerivative.
//
// The nodes must be at least two (else ErrTooFewNodes) and pairwise distinct
// (else ErrDuplicateNodes). Only exact duplicates are rejected: nodes that are
// distinct but nearly equal are accepted and yield a huge inverse denominator,
// degrading every later evaluation for the affected records.
//
// Cost is O(N^2) time and space, paid once per distinct node layout.
func NewNodeSet(nodes []float64) (NodeSet, error) {

	if len(nodes) < 2 {
		return NodeSet{}, fmt.Errorf("cannot NewNodeSet: %w (have %d)", ErrTooFewNodes, len(nodes))
	}

	if !utils.AllDistinct(nodes) {
		return NodeSet{}, fmt.Errorf("cannot NewNodeSet: %w", ErrDuplicateNodes)
	}

	s := NodeSet{
		nodes:   make([]float64, len(nodes)),
		records: make([]NodeRecord, len(nodes)),
	}

	copy(s.nodes, nodes)

	for j := range s.nodes {
		s.records[j] = newNodeRecord(s.nodes, j)
	}

	return s, nil
}

// Len returns the number of nodes N.
func (s NodeSet) Len() int {
	return len(s.nodes)
}

// Nodes returns a copy of the nodes, in construction order.
func (s NodeSet) Nodes() []float64 {
	nodes := make([]float64, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// Record returns the precomputed record of the j-th node.
// The returned record is read-only; writing through it corrupts every later
// evaluation against this NodeSet.
func (s NodeSet) Record(j int) *NodeRecord {
	if j < 0 || j >= len(s.records) {
		panic(fmt.Sprintf("cannot Record: index %d out of range [0, %d]", j, len(s.records)-1))
	}
	return &s.records[j]
}

// Equal checks two NodeSets for equality, i.e. the same nodes in the same
// order. Two equal NodeSets produce bit-identical evaluations.
func (s NodeSet) Equal(other *NodeSet) bool {
	return cmp.Equal(s.nodes, other.nodes)
}

// Fingerprint returns a blake3 digest of the node layout. It is stable across
// processes and platforms, so callers that build one NodeSet per distinct node
// layout can use it to key a cache.
func (s NodeSet) Fingerprint() [32]byte {

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, int64(len(s.nodes)))
	for _, x := range s.nodes {
		binary.Write(buf, binary.BigEndian, math.Float64bits(x))
	}

	hasher := blake3.New()
	hasher.Write(buf.Bytes())

	var fp [32]byte
	copy(fp[:], hasher.Sum(nil))
	return fp
}
