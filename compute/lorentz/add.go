package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

// Sums are expressed in the systems of the first operand.
func init() {
	register(OpAdd, "xy-z-t", priorityExact, registry.Signature{coords.Cartesian4, coords.Cartesian4}, binaryVectorKernel(func(v, w coords.Vec4) coords.Vec4 {
		for i := range v.C {
			v.C[i] += w.C[i]
		}
		return v
	}))
	register(OpAdd, "generic", priorityGeneric, any2, binaryVectorKernel(func(v, w coords.Vec4) coords.Vec4 {
		return combine(v, w, 1)
	}))
}

// combine returns v + sign*w in v's systems.
func combine(v, w coords.Vec4, sign float64) coords.Vec4 {
	x1, y1, z1, t1 := v.Cartesian()
	x2, y2, z2, t2 := w.Cartesian()
	return coords.FromCartesian4(v.Sys, x1+sign*x2, y1+sign*y2, z1+sign*z2, t1+sign*t2)
}
