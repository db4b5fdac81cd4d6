package utils

import (
	"golang.org/x/exp/constraints"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// MinSlice returns the smallest element of a non-empty slice.
func MinSlice[V constraints.Ordered](s []V) (min V) {
	min = s[0]
	for _, si := range s[1:] {
		if si < min {
			min = si
		}
	}
	return
}

// MaxSlice returns the largest element of a non-empty slice.
func MaxSlice[V constraints.Ordered](s []V) (max V) {
	max = s[0]
	for _, si := range s[1:] {
		if si > max {
			max = si
		}
	}
	return
}
