package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpRapidity, "z-t", priorityPartial, registry.Signature{{Lo: coords.Z, Te: coords.T}}, scalarKernel(func(v coords.Vec4) float64 {
		return rapidity(v.C[2], v.C[3])
	}))
	register(OpRapidity, "generic", priorityGeneric, any1, scalarKernel(func(v coords.Vec4) float64 {
		return rapidity(v.Z(), v.T())
	}))
}

// rapidity is 0.5 * ln((t + z) / (t - z)), defined as 0 for z == 0.
func rapidity(z, t float64) float64 {
	if z == 0 {
		return 0
	}
	return 0.5 * math.Log((t+z)/(t-z))
}
