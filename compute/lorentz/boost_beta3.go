package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/pkg/errors"
)

// boost_beta3 boosts Vectors[0] by the velocity Beta3.
func init() {
	register(OpBoostBeta3, "generic", priorityGeneric, any1, func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		if !args.Beta3.Sys.Valid() {
			return registry.Result{}, errors.Wrapf(coords.ErrInvalidSystem, "beta3 in %s", args.Beta3.Sys)
		}

		bx, by, bz := args.Beta3.Cartesian()
		out, err := boostBeta3(args.Vectors[0], bx, by, bz)
		if err != nil {
			return registry.Result{}, err
		}
		return registry.Vector4(out), nil
	})
}
