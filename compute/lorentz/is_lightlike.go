package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/coords"
)

// DefaultLightlikeTolerance is the is_lightlike tolerance when none is given.
const DefaultLightlikeTolerance = 1e-5

// is_lightlike: ||t| - |p|| <= tolerance (Params[0]).
func init() {
	register(OpIsLightlike, "generic", priorityGeneric, any1, toleranceKernel(DefaultLightlikeTolerance, func(v coords.Vec4, tol float64) bool {
		return math.Abs(math.Abs(v.T())-v.Mag()) <= tol
	}))
}
