package lorentz

import "github.com/cwbudde/algo-lorentz/coords"

func init() {
	register(OpBeta, "generic", priorityGeneric, any1, scalarKernel(func(v coords.Vec4) float64 {
		mag := v.Mag()
		t := v.T()
		if mag == 0 && t == 0 {
			return 0
		}
		return mag / t
	}))
}
