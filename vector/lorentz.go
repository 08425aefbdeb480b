// Package vector provides the user-facing Lorentz and spatial vector types.
//
// Every kinematic method dispatches through the shared kernel registry, so
// the kernel chosen depends on how the operands are stored: a vector built
// with [NewPtEtaPhiM] answers Tau() from its stored mass, while one built
// with [NewXYZT] computes it from (x, y, z, t).
//
// The zero value of [Lorentz] and [Spatial] is the Cartesian zero vector.
//
// Scalar and boolean methods panic if no kernel is registered, which only
// happens when the kernel package failed to initialise. Methods that take
// physical parameters (boosts, transformations) and conversions return
// errors instead.
package vector

import (
	"fmt"

	"github.com/cwbudde/algo-lorentz/compute/lorentz"
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/pkg/errors"
)

// Lorentz is a 4-vector (momentum or position) stored in a fixed
// coordinate system.
type Lorentz struct {
	v coords.Vec4
}

// New returns a Lorentz vector with components in sys order
// (azimuthal1, azimuthal2, longitudinal, temporal).
func New(sys coords.System4, c0, c1, c2, c3 float64) (Lorentz, error) {
	v, err := coords.NewVec4(sys, c0, c1, c2, c3)
	if err != nil {
		return Lorentz{}, err
	}
	return Lorentz{v: v}, nil
}

// FromVec4 wraps an existing coords.Vec4.
func FromVec4(v coords.Vec4) (Lorentz, error) {
	if !v.Sys.Valid() {
		return Lorentz{}, errors.Wrapf(coords.ErrInvalidSystem, "wrap %s", v)
	}
	return Lorentz{v: v}, nil
}

// NewXYZT returns a Cartesian 4-vector.
func NewXYZT(x, y, z, t float64) Lorentz {
	return Lorentz{v: coords.Vec4{Sys: coords.Cartesian4, C: [4]float64{x, y, z, t}}}
}

// NewPxPyPzE returns a Cartesian 4-momentum.
func NewPxPyPzE(px, py, pz, e float64) Lorentz {
	return NewXYZT(px, py, pz, e)
}

// NewPtEtaPhiM returns a momentum stored as (pt, phi, eta, mass).
func NewPtEtaPhiM(pt, eta, phi, m float64) Lorentz {
	return Lorentz{v: coords.Vec4{
		Sys: coords.System4{Az: coords.RhoPhi, Lo: coords.Eta, Te: coords.Tau},
		C:   [4]float64{pt, phi, eta, m},
	}}
}

// NewPtEtaPhiE returns a momentum stored as (pt, phi, eta, energy).
func NewPtEtaPhiE(pt, eta, phi, e float64) Lorentz {
	return Lorentz{v: coords.Vec4{
		Sys: coords.System4{Az: coords.RhoPhi, Lo: coords.Eta, Te: coords.T},
		C:   [4]float64{pt, phi, eta, e},
	}}
}

// NewRhoPhiZT returns a vector stored as (rho, phi, z, t).
func NewRhoPhiZT(rho, phi, z, t float64) Lorentz {
	return Lorentz{v: coords.Vec4{
		Sys: coords.System4{Az: coords.RhoPhi, Lo: coords.Z, Te: coords.T},
		C:   [4]float64{rho, phi, z, t},
	}}
}

// Vec4 returns the stored representation.
func (l Lorentz) Vec4() coords.Vec4 { return l.vec() }

// vec returns the stored vector; the zero value reads as Cartesian zero.
func (l Lorentz) vec() coords.Vec4 {
	if !l.v.Sys.Valid() {
		return coords.Vec4{Sys: coords.Cartesian4}
	}
	return l.v
}

// System returns the coordinate system of l.
func (l Lorentz) System() coords.System4 { return l.vec().Sys }

// To re-expresses l in sys. A vector on the beam axis cannot be expressed
// with theta or eta and yields coords.ErrBeamAxis.
func (l Lorentz) To(sys coords.System4) (Lorentz, error) {
	if !sys.Valid() {
		return Lorentz{}, errors.Wrapf(coords.ErrInvalidSystem, "convert to %s", sys)
	}
	v := l.vec()
	if v.Sys.Spatial() != sys.Spatial() {
		x, y, z := v.Spatial().Cartesian()
		if err := coords.CheckRepresentable(sys.Spatial(), x, y, z); err != nil {
			return Lorentz{}, err
		}
	}
	return Lorentz{v: v.To(sys)}, nil
}

func (l Lorentz) String() string { return l.vec().String() }

// X returns the Cartesian x component.
func (l Lorentz) X() float64 {
	x, _, _ := l.vec().Spatial().Cartesian()
	return x
}

// Y returns the Cartesian y component.
func (l Lorentz) Y() float64 {
	_, y, _ := l.vec().Spatial().Cartesian()
	return y
}

// Z returns the longitudinal component.
func (l Lorentz) Z() float64 { return l.vec().Z() }

// Rho returns the transverse magnitude.
func (l Lorentz) Rho() float64 { return l.vec().Rho() }

// Phi returns the azimuth in (-pi, pi].
func (l Lorentz) Phi() float64 { return l.vec().Phi() }

// Theta returns the polar angle from +z.
func (l Lorentz) Theta() float64 { return l.vec().Theta() }

// Eta returns the pseudorapidity.
func (l Lorentz) Eta() float64 { return l.vec().Eta() }

// Mag returns the spatial magnitude |p|.
func (l Lorentz) Mag() float64 { return l.vec().Mag() }

// Mag2 returns |p|^2.
func (l Lorentz) Mag2() float64 { return l.vec().Mag2() }

// Px is X.
func (l Lorentz) Px() float64 { return l.X() }

// Py is Y.
func (l Lorentz) Py() float64 { return l.Y() }

// Pz is Z.
func (l Lorentz) Pz() float64 { return l.Z() }

// Pt is Rho.
func (l Lorentz) Pt() float64 { return l.Rho() }

// E is T.
func (l Lorentz) E() float64 { return l.T() }

// Energy is T.
func (l Lorentz) Energy() float64 { return l.T() }

// M is Tau.
func (l Lorentz) M() float64 { return l.Tau() }

// Mass is Tau.
func (l Lorentz) Mass() float64 { return l.Tau() }

// M2 is Tau2.
func (l Lorentz) M2() float64 { return l.Tau2() }

// Spatial returns the spatial part of l.
func (l Lorentz) Spatial() Spatial { return Spatial{v: l.vec().Spatial()} }

func (l Lorentz) scalar(op string, params ...float64) float64 {
	return mustDispatch(op, registry.Args{Vectors: []coords.Vec4{l.vec()}, Params: params}).Scalar
}

func (l Lorentz) boolean(op string, params ...float64) bool {
	return mustDispatch(op, registry.Args{Vectors: []coords.Vec4{l.vec()}, Params: params}).Bool
}

// T returns the temporal component (time or energy).
func (l Lorentz) T() float64 { return l.scalar(lorentz.OpT) }

// T2 returns t^2.
func (l Lorentz) T2() float64 { return l.scalar(lorentz.OpT2) }

// Tau returns the signed proper time (mass); negative for spacelike vectors.
func (l Lorentz) Tau() float64 { return l.scalar(lorentz.OpTau) }

// Tau2 returns t^2 - |p|^2.
func (l Lorentz) Tau2() float64 { return l.scalar(lorentz.OpTau2) }

// Beta returns |p| / t.
func (l Lorentz) Beta() float64 { return l.scalar(lorentz.OpBeta) }

// Gamma returns t / tau.
func (l Lorentz) Gamma() float64 { return l.scalar(lorentz.OpGamma) }

// Et returns the transverse energy t * sin(theta).
func (l Lorentz) Et() float64 { return l.scalar(lorentz.OpEt) }

// Et2 returns Et^2.
func (l Lorentz) Et2() float64 { return l.scalar(lorentz.OpEt2) }

// Mt returns the signed transverse mass.
func (l Lorentz) Mt() float64 { return l.scalar(lorentz.OpMt) }

// Mt2 returns t^2 - z^2.
func (l Lorentz) Mt2() float64 { return l.scalar(lorentz.OpMt2) }

// Rapidity returns 0.5 * ln((t + z) / (t - z)).
func (l Lorentz) Rapidity() float64 { return l.scalar(lorentz.OpRapidity) }

// Dot returns the Minkowski product with metric (+, -, -, -).
func (l Lorentz) Dot(o Lorentz) float64 {
	return mustDispatch(lorentz.OpDot, registry.Args{Vectors: []coords.Vec4{l.vec(), o.vec()}}).Scalar
}

// Add returns l + o in l's coordinate system.
func (l Lorentz) Add(o Lorentz) Lorentz {
	return Lorentz{v: mustDispatch(lorentz.OpAdd, registry.Args{Vectors: []coords.Vec4{l.vec(), o.vec()}}).Vec4}
}

// Subtract returns l - o in l's coordinate system.
func (l Lorentz) Subtract(o Lorentz) Lorentz {
	args := registry.Args{Vectors: []coords.Vec4{l.vec(), o.vec()}}
	return Lorentz{v: mustDispatch(lorentz.OpSubtract, args).Vec4}
}

// Scale multiplies l by factor.
func (l Lorentz) Scale(factor float64) Lorentz {
	args := registry.Args{Vectors: []coords.Vec4{l.vec()}, Params: []float64{factor}}
	return Lorentz{v: mustDispatch(lorentz.OpScale, args).Vec4}
}

// Unit rescales l to |tau| = 1. Lightlike vectors are returned unchanged.
func (l Lorentz) Unit() Lorentz {
	return Lorentz{v: mustDispatch(lorentz.OpUnit, registry.Args{Vectors: []coords.Vec4{l.vec()}}).Vec4}
}

// Equal reports exact equality of components.
func (l Lorentz) Equal(o Lorentz) bool {
	return mustDispatch(lorentz.OpEqual, registry.Args{Vectors: []coords.Vec4{l.vec(), o.vec()}}).Bool
}

// NotEqual is the negation of Equal.
func (l Lorentz) NotEqual(o Lorentz) bool {
	return mustDispatch(lorentz.OpNotEqual, registry.Args{Vectors: []coords.Vec4{l.vec(), o.vec()}}).Bool
}

// IsClose reports componentwise closeness; see WithRelTol, WithAbsTol and
// WithEqualNaN.
func (l Lorentz) IsClose(o Lorentz, opts ...Option) bool {
	cfg := applyOptions(opts)
	equalNaN := 0.0
	if cfg.equalNaN {
		equalNaN = 1
	}
	return mustDispatch(lorentz.OpIsClose, registry.Args{
		Vectors: []coords.Vec4{l.vec(), o.vec()},
		Params:  []float64{cfg.relTol, cfg.absTol, equalNaN},
	}).Bool
}

// IsTimelike reports |t| - |p| > tolerance (default 0).
func (l Lorentz) IsTimelike(opts ...Option) bool {
	return l.boolean(lorentz.OpIsTimelike, applyOptions(opts).toleranceOr(0))
}

// IsSpacelike reports |p| - |t| > tolerance (default 0).
func (l Lorentz) IsSpacelike(opts ...Option) bool {
	return l.boolean(lorentz.OpIsSpacelike, applyOptions(opts).toleranceOr(0))
}

// IsLightlike reports ||t| - |p|| <= tolerance (default 1e-5).
func (l Lorentz) IsLightlike(opts ...Option) bool {
	return l.boolean(lorentz.OpIsLightlike, applyOptions(opts).toleranceOr(lorentz.DefaultLightlikeTolerance))
}

// ToBeta3 returns the velocity p / t in l's spatial system.
func (l Lorentz) ToBeta3() Spatial {
	return Spatial{v: mustDispatch(lorentz.OpToBeta3, registry.Args{Vectors: []coords.Vec4{l.vec()}}).Vec3}
}

func mustDispatch(op string, args registry.Args) registry.Result {
	res, err := registry.Global.Dispatch(op, args)
	if err != nil {
		panic(fmt.Sprintf("vector: %v", err))
	}
	return res
}

// Sum adds vs in the coordinate system of the first element. The sum of no
// vectors is the Cartesian zero vector.
func Sum(vs ...Lorentz) Lorentz {
	if len(vs) == 0 {
		return NewXYZT(0, 0, 0, 0)
	}
	out := vs[0]
	for _, v := range vs[1:] {
		out = out.Add(v)
	}
	return out
}
