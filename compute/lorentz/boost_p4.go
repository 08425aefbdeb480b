package lorentz

import "github.com/cwbudde/algo-lorentz/compute/registry"

// boost_p4 boosts Vectors[0] into the direction of motion of Vectors[1],
// with velocity p/t of the second operand.
func init() {
	register(OpBoostP4, "generic", priorityGeneric, any2, func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 2); err != nil {
			return registry.Result{}, err
		}

		px, py, pz, pt := args.Vectors[1].Cartesian()
		out, err := boostBeta3(args.Vectors[0], px/pt, py/pt, pz/pt)
		if err != nil {
			return registry.Result{}, err
		}
		return registry.Vector4(out), nil
	})
}
