package mutils

import (
	"math"

	"golang.org/x/exp/constraints"
)

const almostEqualEpsilon = 1e-9

func Clamp[T constraints.Integer | constraints.Float](x, min, max T) T {
	if x < min {
		return min
	}

	if x > max {
		return max
	}

	return x
}

func Lerp[T constraints.Float](min, max, t T) T {
	return min + (max-min)*t
}

func Abs[T constraints.Signed | constraints.Float](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// AlmostEqual compares two floats with a relative tolerance, falling back to an absolute one near zero
func AlmostEqual(a, b float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))

	if scale < 1 {
		return diff <= almostEqualEpsilon
	}

	return diff <= almostEqualEpsilon*scale
}

// Norm returns the p-norm of values
func Norm(p float64, values ...float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += math.Pow(v, p)
	}

	return math.Pow(sum, 1/p)
}
