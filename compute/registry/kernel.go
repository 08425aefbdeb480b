package registry

import (
	"fmt"

	"github.com/cwbudde/algo-lorentz/coords"
	"gonum.org/v1/gonum/mat"
)

// Kind tags the value held by a Result.
type Kind int

const (
	// KindScalar results carry Scalar.
	KindScalar Kind = iota
	// KindBool results carry Bool.
	KindBool
	// KindVec4 results carry Vec4, in the first operand's systems.
	KindVec4
	// KindVec3 results carry Vec3 (to_beta3).
	KindVec3
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindBool:
		return "bool"
	case KindVec4:
		return "vec4"
	case KindVec3:
		return "vec3"
	default:
		return "unknown"
	}
}

// Args are the inputs of a kernel call. Only Vectors take part in signature
// matching.
type Args struct {
	// Vectors are the 4-vector operands.
	Vectors []coords.Vec4

	// Beta3 is the velocity operand of boost_beta3.
	Beta3 coords.Vec3

	// Params are scalar parameters (boost beta, scale factor, tolerances).
	Params []float64

	// Matrix is the 4x4 transformation of transform4D, ordered x, y, z, t.
	Matrix mat.Matrix
}

// Param returns Params[i], or def when fewer parameters were supplied.
func (a Args) Param(i int, def float64) float64 {
	if i < len(a.Params) {
		return a.Params[i]
	}
	return def
}

// Result is the output of a kernel call.
type Result struct {
	Kind   Kind
	Scalar float64
	Bool   bool
	Vec4   coords.Vec4
	Vec3   coords.Vec3
}

// Kernel computes one operation for operands in a fixed set of systems.
type Kernel func(args Args) (Result, error)

// Scalar wraps a float result.
func Scalar(x float64) Result { return Result{Kind: KindScalar, Scalar: x} }

// Bool wraps a boolean result.
func Bool(b bool) Result { return Result{Kind: KindBool, Bool: b} }

// Vector4 wraps a 4-vector result.
func Vector4(v coords.Vec4) Result { return Result{Kind: KindVec4, Vec4: v} }

// Vector3 wraps a 3-vector result.
func Vector3(v coords.Vec3) Result { return Result{Kind: KindVec3, Vec3: v} }

func (r Result) String() string {
	switch r.Kind {
	case KindScalar:
		return fmt.Sprintf("%g", r.Scalar)
	case KindBool:
		return fmt.Sprintf("%t", r.Bool)
	case KindVec4:
		return r.Vec4.String()
	case KindVec3:
		return r.Vec3.String()
	default:
		return "<invalid>"
	}
}
