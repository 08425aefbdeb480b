package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpT2, "t", priorityPartial, registry.Signature{{Te: coords.T}}, scalarKernel(func(v coords.Vec4) float64 {
		return v.C[3] * v.C[3]
	}))
	register(OpT2, "generic", priorityGeneric, any1, scalarKernel(t2))
}

func t2(v coords.Vec4) float64 {
	if v.Sys.Te == coords.Tau {
		tau := v.C[3]
		return math.Max(math.Copysign(tau*tau, tau)+v.Mag2(), 0)
	}
	return v.C[3] * v.C[3]
}
