// Package batch applies Lorentz kinematics to many vectors at once.
//
// Vectors are stored column-wise in Cartesian coordinates so every
// operation reduces to a few block kernels over contiguous slices. The
// kernels come from the fastest registered set the CPU supports.
//
// Operations that take a dst buffer write into it and return it; a nil dst
// allocates. Mismatched lengths panic with "batch: length mismatch".
package batch

import (
	"math"

	"github.com/cwbudde/algo-lorentz/batch/internal/scratch"
	"github.com/cwbudde/algo-lorentz/compute/lorentz"
	"github.com/cwbudde/algo-lorentz/vector"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned by Validate for ragged columns.
var ErrLengthMismatch = errors.New("batch: length mismatch")

// Momenta is a set of Cartesian 4-vectors stored column-wise.
type Momenta struct {
	X, Y, Z, T []float64
}

// New returns n zero vectors.
func New(n int) Momenta {
	return Momenta{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
		T: make([]float64, n),
	}
}

// FromVectors converts vs into columns.
func FromVectors(vs []vector.Lorentz) Momenta {
	m := New(len(vs))
	for i, v := range vs {
		m.X[i], m.Y[i], m.Z[i], m.T[i] = v.Vec4().Cartesian()
	}
	return m
}

// Len returns the number of vectors.
func (m Momenta) Len() int { return len(m.T) }

// Validate reports ragged columns.
func (m Momenta) Validate() error {
	n := len(m.T)
	if len(m.X) != n || len(m.Y) != n || len(m.Z) != n {
		return errors.Wrapf(ErrLengthMismatch, "x=%d y=%d z=%d t=%d", len(m.X), len(m.Y), len(m.Z), n)
	}
	return nil
}

// At returns vector i.
func (m Momenta) At(i int) vector.Lorentz {
	return vector.NewXYZT(m.X[i], m.Y[i], m.Z[i], m.T[i])
}

// Vectors converts the columns back into vectors.
func (m Momenta) Vectors() []vector.Lorentz {
	m.mustValidate()
	out := make([]vector.Lorentz, m.Len())
	for i := range out {
		out[i] = m.At(i)
	}
	return out
}

func (m Momenta) mustValidate() {
	if err := m.Validate(); err != nil {
		panic(err.Error())
	}
}

func (m Momenta) sameLen(o Momenta) {
	m.mustValidate()
	o.mustValidate()
	if m.Len() != o.Len() {
		panic("batch: length mismatch")
	}
}

func (m Momenta) buffer(dst []float64) []float64 {
	if dst == nil {
		return make([]float64, m.Len())
	}
	if len(dst) != m.Len() {
		panic("batch: length mismatch")
	}
	return dst
}

func (m Momenta) momentaBuffer(dst *Momenta) Momenta {
	if dst == nil {
		return New(m.Len())
	}
	dst.mustValidate()
	if dst.Len() != m.Len() {
		panic("batch: length mismatch")
	}
	return *dst
}

// Add stores m + o in dst.
func Add(dst *Momenta, m, o Momenta) Momenta {
	m.sameLen(o)
	out := m.momentaBuffer(dst)
	k := kernels()
	k.AddBlock(out.X, m.X, o.X)
	k.AddBlock(out.Y, m.Y, o.Y)
	k.AddBlock(out.Z, m.Z, o.Z)
	k.AddBlock(out.T, m.T, o.T)
	return out
}

// Subtract stores m - o in dst.
func Subtract(dst *Momenta, m, o Momenta) Momenta {
	m.sameLen(o)
	out := m.momentaBuffer(dst)
	k := kernels()
	k.SubBlock(out.X, m.X, o.X)
	k.SubBlock(out.Y, m.Y, o.Y)
	k.SubBlock(out.Z, m.Z, o.Z)
	k.SubBlock(out.T, m.T, o.T)
	return out
}

// Scale stores factor * m in dst.
func Scale(dst *Momenta, m Momenta, factor float64) Momenta {
	m.mustValidate()
	out := m.momentaBuffer(dst)
	k := kernels()
	k.ScaleBlock(out.X, m.X, factor)
	k.ScaleBlock(out.Y, m.Y, factor)
	k.ScaleBlock(out.Z, m.Z, factor)
	k.ScaleBlock(out.T, m.T, factor)
	return out
}

// Dot stores the Minkowski products m[i].o[i] in dst.
func Dot(dst []float64, m, o Momenta) []float64 {
	m.sameLen(o)
	out := m.buffer(dst)
	tmp := scratch.Default.Get(m.Len())
	defer scratch.Default.Put(tmp)
	spatial := tmp.Data()
	k := kernels()
	k.MulBlock(spatial, m.X, o.X)
	k.MulAddBlock(spatial, m.Y, o.Y, spatial)
	k.MulAddBlock(spatial, m.Z, o.Z, spatial)
	k.MulBlock(out, m.T, o.T)
	k.SubBlock(out, out, spatial)
	return out
}

// Tau2 stores t^2 - |p|^2 in dst.
func (m Momenta) Tau2(dst []float64) []float64 {
	m.mustValidate()
	out := m.buffer(dst)
	tmp := scratch.Default.Get(m.Len())
	defer scratch.Default.Put(tmp)
	mag2 := tmp.Data()
	k := kernels()
	k.Power(mag2, m.X, m.Y)
	k.MulAddBlock(mag2, m.Z, m.Z, mag2)
	k.MulBlock(out, m.T, m.T)
	k.SubBlock(out, out, mag2)
	return out
}

// Tau stores the signed proper time in dst; spacelike entries are negative.
func (m Momenta) Tau(dst []float64) []float64 {
	out := m.Tau2(dst)
	for i, v := range out {
		out[i] = math.Copysign(mathSqrt(math.Abs(v)), v)
	}
	return out
}

// Mt2 stores t^2 - z^2 in dst.
func (m Momenta) Mt2(dst []float64) []float64 {
	m.mustValidate()
	out := m.buffer(dst)
	tmp := scratch.Default.Get(m.Len())
	defer scratch.Default.Put(tmp)
	z2 := tmp.Data()
	k := kernels()
	k.MulBlock(z2, m.Z, m.Z)
	k.MulBlock(out, m.T, m.T)
	k.SubBlock(out, out, z2)
	return out
}

// Pt stores the transverse magnitudes in dst.
func (m Momenta) Pt(dst []float64) []float64 {
	m.mustValidate()
	out := m.buffer(dst)
	kernels().Magnitude(out, m.X, m.Y)
	return out
}

// Pt2 stores the squared transverse magnitudes in dst.
func (m Momenta) Pt2(dst []float64) []float64 {
	m.mustValidate()
	out := m.buffer(dst)
	kernels().Power(out, m.X, m.Y)
	return out
}

// Rapidity stores 0.5 * ln((t + z) / (t - z)) in dst; entries with z == 0
// are 0.
func (m Momenta) Rapidity(dst []float64) []float64 {
	m.mustValidate()
	out := m.buffer(dst)
	for i := range out {
		z, t := m.Z[i], m.T[i]
		if z == 0 {
			out[i] = 0
			continue
		}
		out[i] = 0.5 * mathLog((t+z)/(t-z))
	}
	return out
}

// BoostZ stores m boosted along z with velocity beta in dst. dst may be &m.
func BoostZ(dst *Momenta, m Momenta, beta float64) (Momenta, error) {
	m.mustValidate()
	if !(math.Abs(beta) < 1) {
		return Momenta{}, errors.Wrapf(lorentz.ErrSuperluminal, "batch: boostZ beta=%g", beta)
	}
	out := m.momentaBuffer(dst)
	gamma := 1 / math.Sqrt(1-beta*beta)

	tmpT := scratch.Default.Get(m.Len())
	tmpZ := scratch.Default.Get(m.Len())
	defer scratch.Default.Put(tmpT)
	defer scratch.Default.Put(tmpZ)
	bt, bz := tmpT.Data(), tmpZ.Data()
	k := kernels()
	k.ScaleBlock(bt, m.T, beta)
	k.ScaleBlock(bz, m.Z, beta)
	k.AddMulBlock(out.Z, m.Z, bt, gamma)
	k.AddMulBlock(out.T, m.T, bz, gamma)
	copy(out.X, m.X)
	copy(out.Y, m.Y)
	return out, nil
}

// Sum returns the total 4-vector.
func (m Momenta) Sum() vector.Lorentz {
	m.mustValidate()
	return vector.NewXYZT(floats.Sum(m.X), floats.Sum(m.Y), floats.Sum(m.Z), floats.Sum(m.T))
}
