package vector

import (
	"github.com/cwbudde/algo-lorentz/compute/lorentz"
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
	"gonum.org/v1/gonum/mat"
)

func (l Lorentz) transformed(op string, args registry.Args) (Lorentz, error) {
	res, err := registry.Global.Dispatch(op, args)
	if err != nil {
		return Lorentz{}, err
	}
	return Lorentz{v: res.Vec4}, nil
}

func (l Lorentz) boostParam(op string, p float64) (Lorentz, error) {
	return l.transformed(op, registry.Args{Vectors: []coords.Vec4{l.vec()}, Params: []float64{p}})
}

// BoostBeta3 boosts l by the velocity beta (units of c).
func (l Lorentz) BoostBeta3(beta Spatial) (Lorentz, error) {
	args := registry.Args{Vectors: []coords.Vec4{l.vec()}, Beta3: beta.vec()}
	return l.transformed(lorentz.OpBoostBeta3, args)
}

// BoostP4 boosts l by the velocity of p.
func (l Lorentz) BoostP4(p Lorentz) (Lorentz, error) {
	return l.transformed(lorentz.OpBoostP4, registry.Args{Vectors: []coords.Vec4{l.vec(), p.vec()}})
}

// BoostX boosts l along x with velocity beta.
func (l Lorentz) BoostX(beta float64) (Lorentz, error) {
	return l.boostParam(lorentz.OpBoostXBeta, beta)
}

// BoostY boosts l along y with velocity beta.
func (l Lorentz) BoostY(beta float64) (Lorentz, error) {
	return l.boostParam(lorentz.OpBoostYBeta, beta)
}

// BoostZ boosts l along z with velocity beta.
func (l Lorentz) BoostZ(beta float64) (Lorentz, error) {
	return l.boostParam(lorentz.OpBoostZBeta, beta)
}

// BoostXGamma boosts l along x with Lorentz factor gamma; negative gamma
// boosts towards -x.
func (l Lorentz) BoostXGamma(gamma float64) (Lorentz, error) {
	return l.boostParam(lorentz.OpBoostXGamma, gamma)
}

// BoostYGamma is BoostXGamma along y.
func (l Lorentz) BoostYGamma(gamma float64) (Lorentz, error) {
	return l.boostParam(lorentz.OpBoostYGamma, gamma)
}

// BoostZGamma is BoostXGamma along z.
func (l Lorentz) BoostZGamma(gamma float64) (Lorentz, error) {
	return l.boostParam(lorentz.OpBoostZGamma, gamma)
}

// Transform4D applies a 4x4 matrix with rows and columns ordered x, y, z, t.
func (l Lorentz) Transform4D(m mat.Matrix) (Lorentz, error) {
	args := registry.Args{Vectors: []coords.Vec4{l.vec()}, Matrix: m}
	return l.transformed(lorentz.OpTransform4D, args)
}

// BoostMatrix returns the 4x4 boost for velocity beta, suitable for
// composing with other transformations before calling Transform4D.
func BoostMatrix(beta Spatial) (*mat.Dense, error) {
	bx, by, bz := beta.vec().Cartesian()
	return lorentz.BoostMatrix(bx, by, bz)
}
