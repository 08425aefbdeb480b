package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpTau, "tau", priorityPartial, registry.Signature{{Te: coords.Tau}}, scalarKernel(func(v coords.Vec4) float64 {
		return v.C[3]
	}))
	register(OpTau, "generic", priorityGeneric, any1, scalarKernel(coords.Vec4.Tau))
}
