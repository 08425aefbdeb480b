package lorentz

import "github.com/cwbudde/algo-lorentz/coords"

func init() {
	register(OpNotEqual, "generic", priorityGeneric, any2, binaryBoolKernel(func(v, w coords.Vec4) bool {
		return !equal(v, w)
	}))
}
