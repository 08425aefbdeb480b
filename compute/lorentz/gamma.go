package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

// gamma = t / tau. Lightlike vectors give +/-Inf, the null vector NaN.
func init() {
	register(OpGamma, "tau", priorityPartial, registry.Signature{{Te: coords.Tau}}, scalarKernel(func(v coords.Vec4) float64 {
		tau := v.C[3]
		return coords.TOf(tau, v.Mag2()) / tau
	}))
	register(OpGamma, "generic", priorityGeneric, any1, scalarKernel(func(v coords.Vec4) float64 {
		return v.T() / v.Tau()
	}))
}
