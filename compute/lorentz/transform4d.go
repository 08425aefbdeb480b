package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/pkg/errors"
)

// transform4D applies Matrix (rows and columns ordered x, y, z, t) to
// Vectors[0]. The result keeps the operand's systems.
func init() {
	register(OpTransform4D, "generic", priorityGeneric, any1, func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		if args.Matrix == nil {
			return registry.Result{}, errors.Wrap(ErrBadMatrix, "nil matrix")
		}
		if r, c := args.Matrix.Dims(); r != 4 || c != 4 {
			return registry.Result{}, errors.Wrapf(ErrBadMatrix, "got %dx%d", r, c)
		}
		out, err := transform(args.Vectors[0], args.Matrix)
		if err != nil {
			return registry.Result{}, err
		}
		return registry.Vector4(out), nil
	})
}
