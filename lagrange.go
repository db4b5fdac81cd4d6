/*
Package lagrange provides building blocks for evaluating Lagrange interpolating
polynomials and their first derivatives on a fixed set of interpolation nodes.
It is intended as a low-level component for numerical codes (finite-element or
finite-difference solvers) that repeatedly interpolate tabulated values onto
new points using the same node layout: the per-node data is derived once, after
which any basis polynomial can be evaluated at any query point without
revisiting node differences.
*/
package lagrange
