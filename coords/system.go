// Package coords defines the coordinate systems in which Lorentz vectors are
// stored and the conversions between them.
//
// A 4-vector is described by three independent choices:
//
//   - azimuthal:    [XY] (x, y) or [RhoPhi] (rho, phi)
//   - longitudinal: [Z] (z), [Theta] (polar angle) or [Eta] (pseudorapidity)
//   - temporal:     [T] (time or energy) or [Tau] (signed proper time or mass)
//
// The zero value of each choice is a wildcard (AnyAzimuthal, AnyLongitudinal,
// AnyTemporal). Wildcards are only meaningful in dispatch patterns; a stored
// vector always carries concrete coordinates.
package coords

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidSystem is returned when a coordinate system is incomplete or
// cannot be parsed.
var ErrInvalidSystem = errors.New("coords: invalid coordinate system")

// ErrBeamAxis is returned when a vector on the beam axis (rho == 0, z != 0)
// would be stored with a Theta or Eta longitudinal coordinate, which cannot
// hold its z.
var ErrBeamAxis = errors.New("coords: beam-axis vector has no theta/eta representation")

// Azimuthal selects the coordinates of the transverse plane.
type Azimuthal int

const (
	// AnyAzimuthal matches either azimuthal choice.
	AnyAzimuthal Azimuthal = iota
	// XY stores the Cartesian components (x, y).
	XY
	// RhoPhi stores the transverse magnitude and the azimuth in (-pi, pi].
	RhoPhi
)

func (a Azimuthal) String() string {
	switch a {
	case AnyAzimuthal:
		return "any"
	case XY:
		return "xy"
	case RhoPhi:
		return "rhophi"
	default:
		return "unknown"
	}
}

// Longitudinal selects the coordinate along the beam (z) axis.
type Longitudinal int

const (
	// AnyLongitudinal matches every longitudinal choice.
	AnyLongitudinal Longitudinal = iota
	// Z stores the Cartesian component along the beam.
	Z
	// Theta stores the polar angle from +z, in [0, pi].
	Theta
	// Eta stores the pseudorapidity -ln(tan(theta/2)).
	Eta
)

func (l Longitudinal) String() string {
	switch l {
	case AnyLongitudinal:
		return "any"
	case Z:
		return "z"
	case Theta:
		return "theta"
	case Eta:
		return "eta"
	default:
		return "unknown"
	}
}

// Temporal selects the fourth coordinate.
type Temporal int

const (
	// AnyTemporal matches either temporal choice.
	AnyTemporal Temporal = iota
	// T stores the time (or energy) component.
	T
	// Tau stores the signed proper time (or mass); negative for spacelike
	// vectors.
	Tau
)

func (t Temporal) String() string {
	switch t {
	case AnyTemporal:
		return "any"
	case T:
		return "t"
	case Tau:
		return "tau"
	default:
		return "unknown"
	}
}

// System3 is the coordinate system of a spatial 3-vector.
type System3 struct {
	Az Azimuthal    // transverse plane
	Lo Longitudinal // beam axis
}

// System4 is the coordinate system of a Lorentz 4-vector.
type System4 struct {
	Az Azimuthal    // transverse plane
	Lo Longitudinal // beam axis
	Te Temporal     // fourth component
}

var (
	// Cartesian3 is the (x, y, z) system.
	Cartesian3 = System3{Az: XY, Lo: Z}

	// Cartesian4 is the (x, y, z, t) system.
	Cartesian4 = System4{Az: XY, Lo: Z, Te: T}
)

func (s System3) String() string {
	return s.Az.String() + "-" + s.Lo.String()
}

// Valid reports whether both choices are concrete.
func (s System3) Valid() bool {
	return validAz(s.Az) && validLo(s.Lo)
}

func (s System4) String() string {
	return s.Az.String() + "-" + s.Lo.String() + "-" + s.Te.String()
}

// Valid reports whether all three choices are concrete.
func (s System4) Valid() bool {
	return validAz(s.Az) && validLo(s.Lo) && validTe(s.Te)
}

// Spatial drops the temporal choice.
func (s System4) Spatial() System3 {
	return System3{Az: s.Az, Lo: s.Lo}
}

// WithTemporal extends a spatial system with a temporal choice.
func (s System3) WithTemporal(te Temporal) System4 {
	return System4{Az: s.Az, Lo: s.Lo, Te: te}
}

// ParseSystem4 parses names such as "xy-z-t" or "rhophi-eta-tau".
// The particle-physics spellings "pxpypze" and "ptetaphim"/"ptetaphie" are
// accepted as well.
func ParseSystem4(name string) (System4, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "pxpypze", "xyzt":
		return Cartesian4, nil
	case "ptetaphim":
		return System4{Az: RhoPhi, Lo: Eta, Te: Tau}, nil
	case "ptetaphie":
		return System4{Az: RhoPhi, Lo: Eta, Te: T}, nil
	}

	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return System4{}, errors.Wrapf(ErrInvalidSystem, "parse %q", name)
	}

	sys3, err := parseParts(parts[0], parts[1])
	if err != nil {
		return System4{}, errors.Wrapf(err, "parse %q", name)
	}

	var te Temporal
	switch parts[2] {
	case "t":
		te = T
	case "tau":
		te = Tau
	default:
		return System4{}, errors.Wrapf(ErrInvalidSystem, "parse %q: temporal %q", name, parts[2])
	}

	return sys3.WithTemporal(te), nil
}

// ParseSystem3 parses names such as "xy-z" or "rhophi-eta".
func ParseSystem3(name string) (System3, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return System3{}, errors.Wrapf(ErrInvalidSystem, "parse %q", name)
	}

	sys, err := parseParts(parts[0], parts[1])
	if err != nil {
		return System3{}, errors.Wrapf(err, "parse %q", name)
	}

	return sys, nil
}

func parseParts(az, lo string) (System3, error) {
	var sys System3

	switch az {
	case "xy":
		sys.Az = XY
	case "rhophi":
		sys.Az = RhoPhi
	default:
		return System3{}, errors.Wrapf(ErrInvalidSystem, "azimuthal %q", az)
	}

	switch lo {
	case "z":
		sys.Lo = Z
	case "theta":
		sys.Lo = Theta
	case "eta":
		sys.Lo = Eta
	default:
		return System3{}, errors.Wrapf(ErrInvalidSystem, "longitudinal %q", lo)
	}

	return sys, nil
}

func validAz(a Azimuthal) bool    { return a == XY || a == RhoPhi }
func validLo(l Longitudinal) bool { return l == Z || l == Theta || l == Eta }
func validTe(t Temporal) bool     { return t == T || t == Tau }
