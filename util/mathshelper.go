package util

import (
	"golang.org/x/exp/constraints"
)

// Max returns the larger of a and b. A NaN argument wins, so bad values
// surface instead of being silently dropped.
func Max[T constraints.Ordered](a T, b T) T {
	if b != b || b > a {
		return b
	}
	return a
}

// Min returns the smaller of a and b, with the same NaN behaviour as Max.
func Min[T constraints.Ordered](a T, b T) T {
	if b != b || b < a {
		return b
	}
	return a
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
