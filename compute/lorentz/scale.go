package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
)

func init() {
	register(OpScale, "generic", priorityGeneric, any1, func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		return registry.Vector4(scale(args.Vectors[0], args.Param(0, 1))), nil
	})
}

// scale multiplies every component of v by factor without leaving v's
// systems. Magnitudes (rho, tau) scale by |factor|; a negative factor
// reflects the direction through phi, theta or eta instead.
func scale(v coords.Vec4, factor float64) coords.Vec4 {
	out := v
	abs := math.Abs(factor)
	flip := factor < 0

	switch v.Sys.Az {
	case coords.RhoPhi:
		out.C[0] = v.C[0] * abs
		if flip {
			out.C[1] = coords.NormalizePhi(v.C[1] + math.Pi)
		}
	default:
		out.C[0] = v.C[0] * factor
		out.C[1] = v.C[1] * factor
	}

	switch v.Sys.Lo {
	case coords.Theta:
		if flip {
			out.C[2] = math.Pi - v.C[2]
		}
	case coords.Eta:
		if flip {
			out.C[2] = -v.C[2]
		}
	default:
		out.C[2] = v.C[2] * factor
	}

	if v.Sys.Te == coords.Tau {
		out.C[3] = v.C[3] * abs
	} else {
		out.C[3] = v.C[3] * factor
	}

	return out
}
