// Package generic provides the pure Go block kernels. They are the fallback
// on every architecture and the reference the accelerated sets are tested
// against.
package generic

import "math"

func checkLen(n int, others ...[]float64) {
	for _, s := range others {
		if len(s) != n {
			panic("batch: length mismatch")
		}
	}
}

// AddBlock computes dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubBlock computes dst[i] = a[i] - b[i].
func SubBlock(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ScaleBlock computes dst[i] = src[i] * scalar.
func ScaleBlock(dst, src []float64, scalar float64) {
	checkLen(len(dst), src)
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}

// AddMulBlock computes dst[i] = (a[i] + b[i]) * scalar.
func AddMulBlock(dst, a, b []float64, scalar float64) {
	checkLen(len(dst), a, b)
	for i := range dst {
		dst[i] = (a[i] + b[i]) * scalar
	}
}

// MulAddBlock computes dst[i] = a[i] * b[i] + c[i].
func MulAddBlock(dst, a, b, c []float64) {
	checkLen(len(dst), a, b, c)
	for i := range dst {
		dst[i] = a[i]*b[i] + c[i]
	}
}

// Magnitude computes dst[i] = sqrt(a[i]^2 + b[i]^2).
func Magnitude(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	for i := range dst {
		dst[i] = math.Sqrt(a[i]*a[i] + b[i]*b[i])
	}
}

// Power computes dst[i] = a[i]^2 + b[i]^2.
func Power(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	for i := range dst {
		dst[i] = a[i]*a[i] + b[i]*b[i]
	}
}
