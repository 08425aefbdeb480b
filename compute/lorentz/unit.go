package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
)

// unit rescales v to |tau| = 1. Lightlike vectors are returned unchanged.
func init() {
	register(OpUnit, "generic", priorityGeneric, any1, func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		v := args.Vectors[0]
		tau := math.Abs(v.Tau())
		if tau == 0 {
			return registry.Vector4(v), nil
		}
		return registry.Vector4(scale(v, 1/tau)), nil
	})
}
