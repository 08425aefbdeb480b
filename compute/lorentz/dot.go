package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpDot, "xy-z-t", priorityExact, registry.Signature{coords.Cartesian4, coords.Cartesian4}, binaryScalarKernel(func(v, w coords.Vec4) float64 {
		return v.C[3]*w.C[3] - v.C[0]*w.C[0] - v.C[1]*w.C[1] - v.C[2]*w.C[2]
	}))

	rhophi := coords.System4{Az: coords.RhoPhi}
	register(OpDot, "rhophi", priorityPartial, registry.Signature{rhophi, rhophi}, binaryScalarKernel(func(v, w coords.Vec4) float64 {
		transverse := v.C[0] * w.C[0] * math.Cos(v.C[1]-w.C[1])
		return v.T()*w.T() - transverse - v.Z()*w.Z()
	}))

	register(OpDot, "generic", priorityGeneric, any2, binaryScalarKernel(dot))
}

func dot(v, w coords.Vec4) float64 {
	x1, y1, z1, t1 := v.Cartesian()
	x2, y2, z2, t2 := w.Cartesian()
	return t1*t2 - x1*x2 - y1*y2 - z1*z2
}
