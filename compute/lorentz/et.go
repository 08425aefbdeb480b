package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

// Et is the transverse energy t * rho / |p| = t * sin(theta).
// A vector with no spatial part has Et = 0.
func init() {
	register(OpEt, "theta", priorityPartial, registry.Signature{{Lo: coords.Theta}}, scalarKernel(func(v coords.Vec4) float64 {
		if v.Rho() == 0 {
			return 0
		}
		return v.T() * math.Sin(v.C[2])
	}))
	register(OpEt, "generic", priorityGeneric, any1, scalarKernel(func(v coords.Vec4) float64 {
		mag := v.Mag()
		if mag == 0 {
			return 0
		}
		return v.T() * v.Rho() / mag
	}))
}
