package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpSubtract, "xy-z-t", priorityExact, registry.Signature{coords.Cartesian4, coords.Cartesian4}, binaryVectorKernel(func(v, w coords.Vec4) coords.Vec4 {
		for i := range v.C {
			v.C[i] -= w.C[i]
		}
		return v
	}))
	register(OpSubtract, "generic", priorityGeneric, any2, binaryVectorKernel(func(v, w coords.Vec4) coords.Vec4 {
		return combine(v, w, -1)
	}))
}
