package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

// to_beta3 returns the velocity p/t in v's spatial systems.
func init() {
	register(OpToBeta3, "generic", priorityGeneric, any1, func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		return registry.Vector3(toBeta3(args.Vectors[0])), nil
	})
}

func toBeta3(v coords.Vec4) coords.Vec3 {
	x, y, z, t := v.Cartesian()
	return coords.FromCartesian3(v.Sys.Spatial(), x/t, y/t, z/t)
}
