package vector

import (
	"math"

	"github.com/cwbudde/algo-lorentz/coords"
)

// Spatial is a 3-vector, used for velocities and the spatial part of a
// Lorentz vector.
type Spatial struct {
	v coords.Vec3
}

// NewSpatial returns a 3-vector with components in sys order.
func NewSpatial(sys coords.System3, c0, c1, c2 float64) (Spatial, error) {
	v, err := coords.NewVec3(sys, c0, c1, c2)
	if err != nil {
		return Spatial{}, err
	}
	return Spatial{v: v}, nil
}

// NewBeta3 returns a Cartesian velocity in units of c.
func NewBeta3(bx, by, bz float64) Spatial {
	return Spatial{v: coords.Vec3{Sys: coords.Cartesian3, C: [3]float64{bx, by, bz}}}
}

// Vec3 returns the stored representation.
func (s Spatial) Vec3() coords.Vec3 { return s.vec() }

// vec returns the stored vector; the zero value reads as Cartesian zero.
func (s Spatial) vec() coords.Vec3 {
	if !s.v.Sys.Valid() {
		return coords.Vec3{Sys: coords.Cartesian3}
	}
	return s.v
}

// System returns the coordinate system of s.
func (s Spatial) System() coords.System3 { return s.vec().Sys }

// To re-expresses s in sys. A vector on the beam axis converted to theta or
// eta reads back a NaN z; use coords.CheckRepresentable to test first.
func (s Spatial) To(sys coords.System3) Spatial { return Spatial{v: s.vec().To(sys)} }

func (s Spatial) String() string { return s.vec().String() }

// X returns the Cartesian x component.
func (s Spatial) X() float64 {
	x, _, _ := s.vec().Cartesian()
	return x
}

// Y returns the Cartesian y component.
func (s Spatial) Y() float64 {
	_, y, _ := s.vec().Cartesian()
	return y
}

// Z returns the longitudinal component.
func (s Spatial) Z() float64 { return s.vec().Z() }

// Rho returns the transverse magnitude.
func (s Spatial) Rho() float64 { return s.vec().Rho() }

// Phi returns the azimuth in (-pi, pi].
func (s Spatial) Phi() float64 { return s.vec().Phi() }

// Theta returns the polar angle from +z.
func (s Spatial) Theta() float64 { return s.vec().Theta() }

// Eta returns the pseudorapidity.
func (s Spatial) Eta() float64 { return s.vec().Eta() }

// Mag returns the magnitude.
func (s Spatial) Mag() float64 { return s.vec().Mag() }

// Mag2 returns the squared magnitude.
func (s Spatial) Mag2() float64 { return s.vec().Mag2() }

// Neg returns -s.
func (s Spatial) Neg() Spatial {
	x, y, z := s.vec().Cartesian()
	return Spatial{v: coords.FromCartesian3(s.vec().Sys, -x, -y, -z)}
}

// DeltaPhi returns phi(l) - phi(o) in (-pi, pi].
func (l Lorentz) DeltaPhi(o Lorentz) float64 {
	return coords.NormalizePhi(l.Phi() - o.Phi())
}

// DeltaEta returns eta(l) - eta(o).
func (l Lorentz) DeltaEta(o Lorentz) float64 {
	return l.Eta() - o.Eta()
}

// DeltaR returns sqrt(DeltaPhi^2 + DeltaEta^2).
func (l Lorentz) DeltaR(o Lorentz) float64 {
	return math.Hypot(l.DeltaPhi(o), l.DeltaEta(o))
}
