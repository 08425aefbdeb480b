package lorentz

import "github.com/cwbudde/algo-lorentz/coords"

func init() {
	register(OpEqual, "generic", priorityGeneric, any2, binaryBoolKernel(equal))
}

// equal compares stored components exactly when both operands share a
// system, and Cartesian components otherwise.
func equal(v, w coords.Vec4) bool {
	a, b := comparable4(v, w)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func comparable4(v, w coords.Vec4) (a, b [4]float64) {
	if v.Sys == w.Sys {
		return v.C, w.C
	}
	x1, y1, z1, t1 := v.Cartesian()
	x2, y2, z2, t2 := w.Cartesian()
	return [4]float64{x1, y1, z1, t1}, [4]float64{x2, y2, z2, t2}
}
