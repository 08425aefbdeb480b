package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/coords"
)

// is_spacelike: |p| - |t| > tolerance (Params[0], default 0).
func init() {
	register(OpIsSpacelike, "generic", priorityGeneric, any1, toleranceKernel(0, func(v coords.Vec4, tol float64) bool {
		return v.Mag()-math.Abs(v.T()) > tol
	}))
}
