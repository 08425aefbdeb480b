package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

// Default tolerances of isclose, matching numpy.isclose.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8
)

// isclose takes Params (rtol, atol, equalNaN) where equalNaN is non-zero
// for true. Each component pair must satisfy |a - b| <= atol + rtol*|b|;
// azimuthal angles are compared modulo 2*pi.
func init() {
	register(OpIsClose, "generic", priorityGeneric, any2, func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 2); err != nil {
			return registry.Result{}, err
		}

		rtol := args.Param(0, DefaultRelTol)
		atol := args.Param(1, DefaultAbsTol)
		equalNaN := args.Param(2, 0) != 0

		v, w := args.Vectors[0], args.Vectors[1]
		a, b := comparable4(v, w)
		phiIndex := -1
		if v.Sys == w.Sys && v.Sys.Az == coords.RhoPhi {
			phiIndex = 1
		}

		for i := range a {
			var ok bool
			if i == phiIndex {
				ok = closeAngle(a[i], b[i], rtol, atol)
			} else {
				ok = closeEnough(a[i], b[i], rtol, atol, equalNaN)
			}
			if !ok {
				return registry.Bool(false), nil
			}
		}

		return registry.Bool(true), nil
	})
}

func closeEnough(a, b, rtol, atol float64, equalNaN bool) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return equalNaN && math.IsNaN(a) && math.IsNaN(b)
	}
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

func closeAngle(a, b, rtol, atol float64) bool {
	d := coords.NormalizePhi(a - b)
	if math.IsNaN(d) {
		return false
	}
	return math.Abs(d) <= atol+rtol*math.Abs(b)
}
