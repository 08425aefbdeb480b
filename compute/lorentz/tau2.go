package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpTau2, "tau", priorityPartial, registry.Signature{{Te: coords.Tau}}, scalarKernel(func(v coords.Vec4) float64 {
		tau := v.C[3]
		return math.Copysign(tau*tau, tau)
	}))
	register(OpTau2, "generic", priorityGeneric, any1, scalarKernel(tau2))
}

// tau2 is the squared invariant t^2 - |p|^2; negative for spacelike vectors.
func tau2(v coords.Vec4) float64 {
	if v.Sys.Te == coords.Tau {
		tau := v.C[3]
		return math.Copysign(tau*tau, tau)
	}
	t := v.C[3]
	return t*t - v.Mag2()
}
