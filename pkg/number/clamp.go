package number

import (
	"math"

	"golang.org/x/exp/constraints"
)

// clamp limits v to [lo, hi]. A NaN v resolves to lo because maxNum and
// minNum return the non-NaN operand (IEEE 754-2008).
func clamp[T constraints.Float](v, lo, hi T) T {
	return minNum(maxNum(v, lo), hi)
}

func maxNum[T constraints.Float](a, b T) T {
	switch {
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case a > b:
		return a
	}
	return b
}

func minNum[T constraints.Float](a, b T) T {
	switch {
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case a < b:
		return a
	}
	return b
}

func isNaN[T constraints.Float](v T) bool { return math.IsNaN(float64(v)) }

// wrap maps v onto [0, 1) with a Euclidean modulus. Negative inputs smaller
// in magnitude than half an ulp of 1.0 round to exactly 1.0. NaN and
// infinities produce NaN.
func wrap(v float64) float64 {
	r := math.Mod(v, 1)
	if r < 0 {
		r += 1
	}
	return r
}
