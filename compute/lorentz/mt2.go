package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

// Mt2 is the squared transverse mass t^2 - z^2.
func init() {
	register(OpMt2, "z-t", priorityPartial, registry.Signature{{Lo: coords.Z, Te: coords.T}}, scalarKernel(func(v coords.Vec4) float64 {
		return v.C[3]*v.C[3] - v.C[2]*v.C[2]
	}))
	register(OpMt2, "generic", priorityGeneric, any1, scalarKernel(mt2))
}

func mt2(v coords.Vec4) float64 {
	z := v.Z()
	return t2(v) - z*z
}
