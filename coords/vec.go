package coords

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Vec3 is a spatial vector stored in the coordinates named by Sys.
//
// C holds (azimuthal1, azimuthal2, longitudinal): (x, y, z), (rho, phi, eta), ...
type Vec3 struct {
	Sys System3
	C   [3]float64
}

// Vec4 is a Lorentz vector stored in the coordinates named by Sys.
//
// C holds (azimuthal1, azimuthal2, longitudinal, temporal), for example
// (x, y, z, t) or (rho, phi, eta, tau).
type Vec4 struct {
	Sys System4
	C   [4]float64
}

// NewVec3 builds a Vec3, rejecting wildcard systems.
func NewVec3(sys System3, c0, c1, c2 float64) (Vec3, error) {
	if !sys.Valid() {
		return Vec3{}, errors.Wrapf(ErrInvalidSystem, "new 3-vector in %s", sys)
	}
	return Vec3{Sys: sys, C: [3]float64{c0, c1, c2}}, nil
}

// NewVec4 builds a Vec4, rejecting wildcard systems.
func NewVec4(sys System4, c0, c1, c2, c3 float64) (Vec4, error) {
	if !sys.Valid() {
		return Vec4{}, errors.Wrapf(ErrInvalidSystem, "new 4-vector in %s", sys)
	}
	return Vec4{Sys: sys, C: [4]float64{c0, c1, c2, c3}}, nil
}

func xyOf(az Azimuthal, c0, c1 float64) (x, y float64) {
	if az == RhoPhi {
		return c0 * math.Cos(c1), c0 * math.Sin(c1)
	}
	return c0, c1
}

func rhoPhiOf(az Azimuthal, c0, c1 float64) (rho, phi float64) {
	if az == RhoPhi {
		return c0, NormalizePhi(c1)
	}
	return math.Hypot(c0, c1), NormalizePhi(math.Atan2(c1, c0))
}

func rhoOf(az Azimuthal, c0, c1 float64) float64 {
	if az == RhoPhi {
		return c0
	}
	return math.Hypot(c0, c1)
}

func zOf(lo Longitudinal, rho, c float64) float64 {
	switch lo {
	case Theta:
		return ZFromTheta(rho, c)
	case Eta:
		return ZFromEta(rho, c)
	default:
		return c
	}
}

func fromXY(az Azimuthal, x, y float64) (c0, c1 float64) {
	if az == RhoPhi {
		return math.Hypot(x, y), NormalizePhi(math.Atan2(y, x))
	}
	return x, y
}

func fromZ(lo Longitudinal, rho, z float64) float64 {
	switch lo {
	case Theta:
		return ThetaOf(rho, z)
	case Eta:
		return EtaOf(rho, z)
	default:
		return z
	}
}

// CheckRepresentable returns ErrBeamAxis when sys stores theta or eta and
// (x, y, z) lies on the beam axis, where those coordinates lose z.
func CheckRepresentable(sys System3, x, y, z float64) error {
	if sys.Lo == Z || x != 0 || y != 0 || z == 0 {
		return nil
	}
	return errors.Wrapf(ErrBeamAxis, "(%g, %g, %g) in %s", x, y, z, sys)
}

// Cartesian returns (x, y, z).
func (v Vec3) Cartesian() (x, y, z float64) {
	x, y = xyOf(v.Sys.Az, v.C[0], v.C[1])
	z = zOf(v.Sys.Lo, rhoOf(v.Sys.Az, v.C[0], v.C[1]), v.C[2])
	return x, y, z
}

// Rho returns the transverse magnitude.
func (v Vec3) Rho() float64 { return rhoOf(v.Sys.Az, v.C[0], v.C[1]) }

// Phi returns the azimuthal angle.
func (v Vec3) Phi() float64 {
	_, phi := rhoPhiOf(v.Sys.Az, v.C[0], v.C[1])
	return phi
}

// Z returns the longitudinal component.
func (v Vec3) Z() float64 { return zOf(v.Sys.Lo, v.Rho(), v.C[2]) }

// Theta returns the polar angle.
func (v Vec3) Theta() float64 {
	if v.Sys.Lo == Theta {
		return v.C[2]
	}
	return ThetaOf(v.Rho(), v.Z())
}

// Eta returns the pseudorapidity.
func (v Vec3) Eta() float64 {
	if v.Sys.Lo == Eta {
		return v.C[2]
	}
	return EtaOf(v.Rho(), v.Z())
}

// Mag2 returns the squared magnitude.
func (v Vec3) Mag2() float64 {
	rho := v.Rho()
	z := v.Z()
	return rho*rho + z*z
}

// Mag returns the magnitude.
func (v Vec3) Mag() float64 { return math.Hypot(v.Rho(), v.Z()) }

// To re-expresses v in sys.
func (v Vec3) To(sys System3) Vec3 {
	if v.Sys == sys {
		return v
	}
	x, y, z := v.Cartesian()
	return FromCartesian3(sys, x, y, z)
}

func (v Vec3) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", v.Sys, v.C[0], v.C[1], v.C[2])
}

// FromCartesian3 expresses (x, y, z) in sys.
func FromCartesian3(sys System3, x, y, z float64) Vec3 {
	c0, c1 := fromXY(sys.Az, x, y)
	return Vec3{
		Sys: sys,
		C:   [3]float64{c0, c1, fromZ(sys.Lo, math.Hypot(x, y), z)},
	}
}

// Spatial returns the spatial part of v in v's spatial system.
func (v Vec4) Spatial() Vec3 {
	return Vec3{Sys: v.Sys.Spatial(), C: [3]float64{v.C[0], v.C[1], v.C[2]}}
}

// Cartesian returns (x, y, z, t).
func (v Vec4) Cartesian() (x, y, z, t float64) {
	x, y, z = v.Spatial().Cartesian()
	return x, y, z, v.T()
}

// Rho returns the transverse magnitude.
func (v Vec4) Rho() float64 { return v.Spatial().Rho() }

// Phi returns the azimuthal angle.
func (v Vec4) Phi() float64 { return v.Spatial().Phi() }

// Z returns the longitudinal component.
func (v Vec4) Z() float64 { return v.Spatial().Z() }

// Theta returns the polar angle.
func (v Vec4) Theta() float64 { return v.Spatial().Theta() }

// Eta returns the pseudorapidity.
func (v Vec4) Eta() float64 { return v.Spatial().Eta() }

// Mag2 returns the squared spatial magnitude.
func (v Vec4) Mag2() float64 { return v.Spatial().Mag2() }

// Mag returns the spatial magnitude.
func (v Vec4) Mag() float64 { return v.Spatial().Mag() }

// T returns the temporal component.
func (v Vec4) T() float64 {
	if v.Sys.Te == Tau {
		return TOf(v.C[3], v.Mag2())
	}
	return v.C[3]
}

// Tau returns the signed proper time.
func (v Vec4) Tau() float64 {
	if v.Sys.Te == Tau {
		return v.C[3]
	}
	return TauOf(v.C[3], v.Mag2())
}

// To re-expresses v in sys. Converting a vector with negative t through a
// Tau system loses the sign of t.
func (v Vec4) To(sys System4) Vec4 {
	if v.Sys == sys {
		return v
	}

	if v.Sys.Spatial() == sys.Spatial() {
		out := v
		out.Sys = sys
		if sys.Te == Tau {
			out.C[3] = v.Tau()
		} else {
			out.C[3] = v.T()
		}
		return out
	}

	x, y, z, t := v.Cartesian()
	return FromCartesian4(sys, x, y, z, t)
}

func (v Vec4) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", v.Sys, v.C[0], v.C[1], v.C[2], v.C[3])
}

// FromCartesian4 expresses (x, y, z, t) in sys. A beam-axis vector stored in
// a Theta or Eta system reads back a NaN z; see [CheckRepresentable].
func FromCartesian4(sys System4, x, y, z, t float64) Vec4 {
	s := FromCartesian3(sys.Spatial(), x, y, z)
	c3 := t
	if sys.Te == Tau {
		c3 = TauOf(t, x*x+y*y+z*z)
	}
	return Vec4{Sys: sys, C: [4]float64{s.C[0], s.C[1], s.C[2], c3}}
}
