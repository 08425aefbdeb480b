package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpT, "t", priorityPartial, registry.Signature{{Te: coords.T}}, scalarKernel(func(v coords.Vec4) float64 {
		return v.C[3]
	}))
	register(OpT, "generic", priorityGeneric, any1, scalarKernel(coords.Vec4.T))
}
