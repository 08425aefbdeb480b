//go:build !fastmath

package batch

import "math"

func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}

func mathLog(x float64) float64 {
	return math.Log(x)
}
