// Package lorentz registers the Lorentz-vector kinematic kernels.
//
// Importing this package populates [registry.Global] with one or more kernels
// for every name in [Operations]. Each operation lives in its own file and
// registers itself from init(). The package has no other entry points than
// the manifest, the error values and [BoostMatrix]; callers go through the
// registry or through package vector.
//
// The metric signature is (+, -, -, -): dot(v, v) = t^2 - |p|^2.
package lorentz

import (
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/pkg/errors"
)

// Operation names.
const (
	OpAdd         = "add"
	OpBeta        = "beta"
	OpBoostBeta3  = "boost_beta3"
	OpBoostP4     = "boost_p4"
	OpBoostXBeta  = "boostX_beta"
	OpBoostXGamma = "boostX_gamma"
	OpBoostYBeta  = "boostY_beta"
	OpBoostYGamma = "boostY_gamma"
	OpBoostZBeta  = "boostZ_beta"
	OpBoostZGamma = "boostZ_gamma"
	OpDot         = "dot"
	OpEqual       = "equal"
	OpEt          = "Et"
	OpEt2         = "Et2"
	OpGamma       = "gamma"
	OpIsLightlike = "is_lightlike"
	OpIsSpacelike = "is_spacelike"
	OpIsTimelike  = "is_timelike"
	OpIsClose     = "isclose"
	OpMt          = "Mt"
	OpMt2         = "Mt2"
	OpNotEqual    = "not_equal"
	OpRapidity    = "rapidity"
	OpScale       = "scale"
	OpSubtract    = "subtract"
	OpT           = "t"
	OpT2          = "t2"
	OpTau         = "tau"
	OpTau2        = "tau2"
	OpToBeta3     = "to_beta3"
	OpTransform4D = "transform4D"
	OpUnit        = "unit"
)

// Operations lists every operation this package registers.
var Operations = []string{
	OpAdd, OpBeta, OpBoostBeta3, OpBoostP4,
	OpBoostXBeta, OpBoostXGamma, OpBoostYBeta, OpBoostYGamma, OpBoostZBeta, OpBoostZGamma,
	OpDot, OpEqual, OpEt, OpEt2, OpGamma,
	OpIsLightlike, OpIsSpacelike, OpIsTimelike, OpIsClose,
	OpMt, OpMt2, OpNotEqual, OpRapidity, OpScale, OpSubtract,
	OpT, OpT2, OpTau, OpTau2, OpToBeta3, OpTransform4D, OpUnit,
}

// Missing returns the names in Operations that have no kernel in
// registry.Global. It is empty whenever this package has been initialised.
func Missing() []string {
	var missing []string
	for _, op := range Operations {
		if !registry.Global.Has(op) {
			missing = append(missing, op)
		}
	}
	return missing
}

var (
	// ErrArity is returned when a kernel receives the wrong number of 4-vector operands.
	ErrArity = errors.New("lorentz: wrong number of operands")

	// ErrSuperluminal is returned for boosts with |beta| >= 1 (or undefined beta).
	ErrSuperluminal = errors.New("lorentz: boost velocity must satisfy |beta| < 1")

	// ErrInvalidGamma is returned for boosts with |gamma| < 1.
	ErrInvalidGamma = errors.New("lorentz: boost gamma must satisfy |gamma| >= 1")

	// ErrBadMatrix is returned when transform4D receives something other than a 4x4 matrix.
	ErrBadMatrix = errors.New("lorentz: transformation must be a 4x4 matrix")
)

const (
	priorityGeneric = 0
	priorityPartial = 5
	priorityExact   = 10
)

var (
	any1 = registry.Signature{{}}
	any2 = registry.Signature{{}, {}}
)

func register(op, name string, priority int, sig registry.Signature, kernel registry.Kernel) {
	registry.Global.Register(registry.OpEntry{
		Op:        op,
		Name:      name,
		Signature: sig,
		Priority:  priority,
		Kernel:    kernel,
	})
}

func checkArity(args registry.Args, n int) error {
	if len(args.Vectors) != n {
		return errors.Wrapf(ErrArity, "want %d, got %d", n, len(args.Vectors))
	}
	return nil
}

func scalarKernel(fn func(v coords.Vec4) float64) registry.Kernel {
	return func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		return registry.Scalar(fn(args.Vectors[0])), nil
	}
}

func binaryScalarKernel(fn func(v, w coords.Vec4) float64) registry.Kernel {
	return func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 2); err != nil {
			return registry.Result{}, err
		}
		return registry.Scalar(fn(args.Vectors[0], args.Vectors[1])), nil
	}
}

func binaryVectorKernel(fn func(v, w coords.Vec4) coords.Vec4) registry.Kernel {
	return func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 2); err != nil {
			return registry.Result{}, err
		}
		return registry.Vector4(fn(args.Vectors[0], args.Vectors[1])), nil
	}
}

func binaryBoolKernel(fn func(v, w coords.Vec4) bool) registry.Kernel {
	return func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 2); err != nil {
			return registry.Result{}, err
		}
		return registry.Bool(fn(args.Vectors[0], args.Vectors[1])), nil
	}
}

func toleranceKernel(def float64, fn func(v coords.Vec4, tol float64) bool) registry.Kernel {
	return func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		return registry.Bool(fn(args.Vectors[0], args.Param(0, def))), nil
	}
}
