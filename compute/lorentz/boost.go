package lorentz

import (
	"math"

	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Axis indices into Cartesian (x, y, z).
const (
	axisX = iota
	axisY
	axisZ
)

// BoostMatrix returns the 4x4 Lorentz boost for velocity (bx, by, bz) in
// units of c. Rows and columns are ordered x, y, z, t, matching transform4D:
//
//	t' = g (t + b.p)
//	p' = p + ((g - 1) (b.p) / b^2 + g t) b
func BoostMatrix(bx, by, bz float64) (*mat.Dense, error) {
	b2 := bx*bx + by*by + bz*bz
	if !(b2 < 1) {
		return nil, errors.Wrapf(ErrSuperluminal, "beta=(%g, %g, %g)", bx, by, bz)
	}

	m := mat.NewDense(4, 4, nil)
	if b2 == 0 {
		for i := 0; i < 4; i++ {
			m.Set(i, i, 1)
		}
		return m, nil
	}

	g := 1 / math.Sqrt(1-b2)
	b := [3]float64{bx, by, bz}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := (g - 1) * b[i] * b[j] / b2
			if i == j {
				v++
			}
			m.Set(i, j, v)
		}
		m.Set(i, 3, g*b[i])
		m.Set(3, i, g*b[i])
	}
	m.Set(3, 3, g)

	return m, nil
}

// boostBeta3 applies the boost with velocity (bx, by, bz) to v.
func boostBeta3(v coords.Vec4, bx, by, bz float64) (coords.Vec4, error) {
	m, err := BoostMatrix(bx, by, bz)
	if err != nil {
		return coords.Vec4{}, err
	}
	if bx == 0 && by == 0 && bz == 0 {
		return v, nil
	}
	return transform(v, m)
}

// transform applies m to v's Cartesian components and returns the result in
// v's systems.
func transform(v coords.Vec4, m mat.Matrix) (coords.Vec4, error) {
	x, y, z, t := v.Cartesian()
	in := mat.NewVecDense(4, []float64{x, y, z, t})

	var out mat.VecDense
	out.MulVec(m, in)

	return inSystem(v.Sys, out.AtVec(0), out.AtVec(1), out.AtVec(2), out.AtVec(3))
}

// inSystem expresses a transformed vector in sys, failing where sys cannot
// hold it.
func inSystem(sys coords.System4, x, y, z, t float64) (coords.Vec4, error) {
	if err := coords.CheckRepresentable(sys.Spatial(), x, y, z); err != nil {
		return coords.Vec4{}, err
	}
	return coords.FromCartesian4(sys, x, y, z, t), nil
}

// boostAxis boosts v along one Cartesian axis:
//
//	t'   = g (t + beta p_i)
//	p_i' = g (p_i + beta t)
func boostAxis(v coords.Vec4, axis int, beta float64) (coords.Vec4, error) {
	if !(math.Abs(beta) < 1) {
		return coords.Vec4{}, errors.Wrapf(ErrSuperluminal, "beta=%g", beta)
	}
	if beta == 0 {
		return v, nil
	}

	g := 1 / math.Sqrt(1-beta*beta)
	x, y, z, t := v.Cartesian()
	p := [3]float64{x, y, z}

	pi := p[axis]
	p[axis] = g * (pi + beta*t)
	t = g * (t + beta*pi)

	return inSystem(v.Sys, p[0], p[1], p[2], t)
}

// betaFromGamma converts a signed Lorentz factor into a signed velocity.
// A negative gamma boosts in the negative direction.
func betaFromGamma(gamma float64) (float64, error) {
	if !(math.Abs(gamma) >= 1) {
		return 0, errors.Wrapf(ErrInvalidGamma, "gamma=%g", gamma)
	}
	return math.Copysign(math.Sqrt(1-1/(gamma*gamma)), gamma), nil
}

func axisBetaKernel(axis int) registry.Kernel {
	return func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		out, err := boostAxis(args.Vectors[0], axis, args.Param(0, 0))
		if err != nil {
			return registry.Result{}, err
		}
		return registry.Vector4(out), nil
	}
}

func axisGammaKernel(axis int) registry.Kernel {
	return func(args registry.Args) (registry.Result, error) {
		if err := checkArity(args, 1); err != nil {
			return registry.Result{}, err
		}
		beta, err := betaFromGamma(args.Param(0, 1))
		if err != nil {
			return registry.Result{}, err
		}
		out, err := boostAxis(args.Vectors[0], axis, beta)
		if err != nil {
			return registry.Result{}, err
		}
		return registry.Vector4(out), nil
	}
}
