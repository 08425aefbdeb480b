package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/coords"
)

// is_timelike: |t| - |p| > tolerance (Params[0], default 0).
func init() {
	register(OpIsTimelike, "generic", priorityGeneric, any1, toleranceKernel(0, func(v coords.Vec4, tol float64) bool {
		return math.Abs(v.T())-v.Mag() > tol
	}))
}
