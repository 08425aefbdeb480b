package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpEt2, "theta", priorityPartial, registry.Signature{{Lo: coords.Theta}}, scalarKernel(func(v coords.Vec4) float64 {
		if v.Rho() == 0 {
			return 0
		}
		s := math.Sin(v.C[2])
		return t2(v) * s * s
	}))
	register(OpEt2, "generic", priorityGeneric, any1, scalarKernel(func(v coords.Vec4) float64 {
		mag2 := v.Mag2()
		if mag2 == 0 {
			return 0
		}
		rho := v.Rho()
		return t2(v) * rho * rho / mag2
	}))
}
