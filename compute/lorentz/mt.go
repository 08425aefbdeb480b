package lorentz

import "github.com/cwbudde/algo-lorentz/coords"

// Mt keeps the sign of Mt2.
func init() {
	register(OpMt, "generic", priorityGeneric, any1, scalarKernel(func(v coords.Vec4) float64 {
		return coords.SignedSqrt(mt2(v))
	}))
}
