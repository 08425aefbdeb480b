package vector_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-lorentz/compute/lorentz"
	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/cwbudde/algo-lorentz/internal/testutil"
	"github.com/cwbudde/algo-lorentz/vector"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-12

func TestConstructors(t *testing.T) {
	v, err := vector.New(coords.Cartesian4, 3, 4, 0, 13)
	require.NoError(t, err)
	assert.Equal(t, coords.Cartesian4, v.System())

	_, err = vector.New(coords.System4{}, 1, 2, 3, 4)
	assert.True(t, errors.Is(err, coords.ErrInvalidSystem))

	_, err = vector.FromVec4(coords.Vec4{})
	assert.True(t, errors.Is(err, coords.ErrInvalidSystem))

	m := vector.NewPtEtaPhiM(10, 0.3, 1.2, 5)
	assert.Equal(t, coords.System4{Az: coords.RhoPhi, Lo: coords.Eta, Te: coords.Tau}, m.System())
	assert.Equal(t, 10.0, m.Pt())
	assert.Equal(t, 0.3, m.Eta())
	assert.Equal(t, 1.2, m.Phi())
	assert.Equal(t, 5.0, m.Mass())

	e := vector.NewPtEtaPhiE(10, 0.3, 1.2, 20)
	assert.Equal(t, 20.0, e.Energy())

	r := vector.NewRhoPhiZT(2, math.Pi/2, 1, 3)
	testutil.RequireNear(t, r.X(), 0, eps)
	testutil.RequireNear(t, r.Y(), 2, eps)
	assert.Equal(t, 1.0, r.Pz())
}

func TestScalarMethods(t *testing.T) {
	v := vector.NewXYZT(3, 4, 0, 13)

	testutil.RequireNear(t, v.T(), 13, eps)
	testutil.RequireNear(t, v.T2(), 169, eps)
	testutil.RequireNear(t, v.Tau(), 12, eps)
	testutil.RequireNear(t, v.Tau2(), 144, eps)
	testutil.RequireNear(t, v.M2(), 144, eps)
	testutil.RequireNear(t, v.Beta(), 5.0/13, eps)
	testutil.RequireNear(t, v.Gamma(), 13.0/12, eps)
	testutil.RequireNear(t, v.Mt2(), 169, eps)
	testutil.RequireNear(t, v.Mt(), 13, eps)
	testutil.RequireNear(t, v.Et(), 13, eps)
	testutil.RequireNear(t, v.Et2(), 169, eps)
	testutil.RequireNear(t, v.Rapidity(), 0, eps)
	testutil.RequireNear(t, v.Mag(), 5, eps)
	testutil.RequireNear(t, v.Mag2(), 25, eps)
}

func TestScalarMethodsAgreeAcrossSystems(t *testing.T) {
	ref := vector.NewXYZT(1.5, -2, 3, 7)
	for _, sys := range testutil.Systems4() {
		v, err := ref.To(sys)
		require.NoError(t, err)

		testutil.RequireNear(t, v.Tau(), ref.Tau(), 1e-9, sys)
		testutil.RequireNear(t, v.E(), ref.E(), 1e-9, sys)
		testutil.RequireNear(t, v.Et(), ref.Et(), 1e-9, sys)
		testutil.RequireNear(t, v.Rapidity(), ref.Rapidity(), 1e-9, sys)
		testutil.RequireNear(t, v.Dot(ref), ref.Dot(ref), 1e-9, sys)
	}
}

func TestToRejectsInvalidSystem(t *testing.T) {
	_, err := vector.NewXYZT(1, 2, 3, 4).To(coords.System4{Az: coords.XY})
	assert.True(t, errors.Is(err, coords.ErrInvalidSystem))
}

func TestArithmetic(t *testing.T) {
	a := vector.NewXYZT(1, 2, 3, 10)
	b := vector.NewPtEtaPhiE(1, 0, 0, 4)

	sum := a.Add(b)
	assert.Equal(t, a.System(), sum.System())
	testutil.RequireVec4Near(t, sum.Vec4(), coords.FromCartesian4(coords.Cartesian4, 2, 2, 3, 14), 1e-12)

	diff := a.Subtract(b)
	testutil.RequireVec4Near(t, diff.Vec4(), coords.FromCartesian4(coords.Cartesian4, 0, 2, 3, 6), 1e-12)

	scaled := a.Scale(2)
	testutil.RequireVec4Near(t, scaled.Vec4(), coords.FromCartesian4(coords.Cartesian4, 2, 4, 6, 20), 1e-12)

	testutil.RequireNear(t, a.Dot(b), 10*4-1, 1e-12)
}

func TestSum(t *testing.T) {
	assert.True(t, vector.Sum().Equal(vector.NewXYZT(0, 0, 0, 0)))

	parts := []vector.Lorentz{
		vector.NewPtEtaPhiM(10, 0.5, 0.1, 1),
		vector.NewXYZT(-3, 2, 1, 8),
		vector.NewRhoPhiZT(4, -2, -1, 6),
	}
	total := vector.Sum(parts...)
	assert.Equal(t, parts[0].System(), total.System())

	var px, py, pz, e float64
	for _, p := range parts {
		px += p.Px()
		py += p.Py()
		pz += p.Pz()
		e += p.E()
	}
	testutil.RequireNear(t, total.Px(), px, 1e-9)
	testutil.RequireNear(t, total.Py(), py, 1e-9)
	testutil.RequireNear(t, total.Pz(), pz, 1e-9)
	testutil.RequireNear(t, total.E(), e, 1e-9)
}

func TestUnit(t *testing.T) {
	u := vector.NewXYZT(3, 4, 0, 13).Unit()
	testutil.RequireNear(t, u.Tau(), 1, 1e-12)
	testutil.RequireNear(t, u.Beta(), 5.0/13, 1e-12)

	light := vector.NewXYZT(0, 0, 1, 1)
	assert.True(t, light.Unit().Equal(light))
}

func TestEquality(t *testing.T) {
	a := vector.NewXYZT(1, 2, 3, 4)
	assert.True(t, a.Equal(vector.NewXYZT(1, 2, 3, 4)))
	assert.False(t, a.NotEqual(vector.NewXYZT(1, 2, 3, 4)))
	assert.True(t, a.NotEqual(vector.NewXYZT(1, 2, 3, 5)))
}

func TestIsCloseOptions(t *testing.T) {
	a := vector.NewXYZT(1, 2, 3, 4)
	b := vector.NewXYZT(1, 2, 3, 4.001)

	assert.False(t, a.IsClose(b))
	assert.True(t, a.IsClose(b, vector.WithRelTol(1e-3)))
	assert.True(t, a.IsClose(b, vector.WithAbsTol(0.01)))
	assert.False(t, a.IsClose(b, vector.WithRelTol(-1)))

	n := vector.NewXYZT(math.NaN(), 2, 3, 4)
	assert.False(t, n.IsClose(n))
	assert.True(t, n.IsClose(n, vector.WithEqualNaN(true)))
	assert.True(t, n.IsClose(n, nil, vector.WithEqualNaN(true)))
}

func TestCausalCharacter(t *testing.T) {
	timelike := vector.NewXYZT(0, 0, 1, 2)
	spacelike := vector.NewXYZT(0, 0, 2, 1)
	light := vector.NewXYZT(0, 3, 4, 5)
	nearlyLight := vector.NewXYZT(0, 0, 1, 1+1e-7)

	assert.True(t, timelike.IsTimelike())
	assert.False(t, timelike.IsSpacelike())
	assert.True(t, spacelike.IsSpacelike())
	assert.True(t, light.IsLightlike())
	assert.False(t, light.IsTimelike())
	assert.False(t, light.IsSpacelike())

	assert.True(t, nearlyLight.IsLightlike())
	assert.True(t, nearlyLight.IsTimelike())
	assert.False(t, nearlyLight.IsTimelike(vector.WithTolerance(1e-6)))
	assert.False(t, nearlyLight.IsLightlike(vector.WithTolerance(0)))
}

func TestDeltas(t *testing.T) {
	a := vector.NewPtEtaPhiM(10, 0.5, 3.0, 0)
	b := vector.NewPtEtaPhiM(10, -0.5, -3.0, 0)

	dphi := 6.0 - 2*math.Pi
	testutil.RequireNear(t, a.DeltaPhi(b), dphi, 1e-12)
	testutil.RequireNear(t, b.DeltaPhi(a), -dphi, 1e-12)
	testutil.RequireNear(t, a.DeltaEta(b), 1, 1e-12)
	testutil.RequireNear(t, a.DeltaR(b), math.Hypot(dphi, 1), 1e-12)
}

func TestSpatial(t *testing.T) {
	s, err := vector.NewSpatial(coords.Cartesian3, 3, 4, 12)
	require.NoError(t, err)
	testutil.RequireNear(t, s.Mag(), 13, eps)
	testutil.RequireNear(t, s.Rho(), 5, eps)
	testutil.RequireNear(t, s.Mag2(), 169, eps)

	cyl := s.To(coords.System3{Az: coords.RhoPhi, Lo: coords.Eta})
	testutil.RequireNear(t, cyl.X(), 3, 1e-12)
	testutil.RequireNear(t, cyl.Y(), 4, 1e-12)
	testutil.RequireNear(t, cyl.Z(), 12, 1e-12)
	testutil.RequireNear(t, cyl.Eta(), s.Eta(), 1e-12)
	testutil.RequireNear(t, cyl.Theta(), s.Theta(), 1e-12)

	neg := cyl.Neg()
	assert.Equal(t, cyl.System(), neg.System())
	testutil.RequireNear(t, neg.X(), -3, 1e-12)
	testutil.RequireNear(t, neg.Z(), -12, 1e-12)

	_, err = vector.NewSpatial(coords.System3{}, 1, 2, 3)
	assert.True(t, errors.Is(err, coords.ErrInvalidSystem))

	p := vector.NewXYZT(1, 2, 3, 4)
	sp := p.Spatial()
	assert.Equal(t, coords.Cartesian3, sp.System())
	testutil.RequireNear(t, sp.Z(), 3, eps)
}

func TestToBeta3(t *testing.T) {
	beta := vector.NewXYZT(1, 2, 2, 6).ToBeta3()
	testutil.RequireNear(t, beta.Mag(), 0.5, 1e-12)
	testutil.RequireNear(t, beta.X(), 1.0/6, 1e-12)
}

func TestBoosts(t *testing.T) {
	p := vector.NewPtEtaPhiM(20, 0.7, -1.1, 3)

	for name, boost := range map[string]func(float64) (vector.Lorentz, error){
		"x": p.BoostX,
		"y": p.BoostY,
		"z": p.BoostZ,
	} {
		out, err := boost(0.4)
		require.NoError(t, err, name)
		assert.Equal(t, p.System(), out.System(), name)
		testutil.RequireNear(t, out.Mass(), 3, 1e-9, name)

		_, err = boost(1)
		assert.True(t, errors.Is(err, lorentz.ErrSuperluminal), name)
	}

	gamma := 1 / math.Sqrt(1-0.4*0.4)
	for name, pair := range map[string][2]func(float64) (vector.Lorentz, error){
		"x": {p.BoostX, p.BoostXGamma},
		"y": {p.BoostY, p.BoostYGamma},
		"z": {p.BoostZ, p.BoostZGamma},
	} {
		byBeta, err := pair[0](-0.4)
		require.NoError(t, err, name)
		byGamma, err := pair[1](-gamma)
		require.NoError(t, err, name)
		assert.True(t, byBeta.IsClose(byGamma, vector.WithRelTol(1e-9), vector.WithAbsTol(1e-9)), name)

		_, err = pair[1](0.5)
		assert.True(t, errors.Is(err, lorentz.ErrInvalidGamma), name)
	}
}

func TestBoostBeta3AndP4(t *testing.T) {
	rest := vector.NewXYZT(0, 0, 0, 2)
	p := vector.NewXYZT(3, -4, 12, 20)

	// The rest vector picks up p's velocity, so out = (2 / m) * p.
	out, err := rest.BoostP4(p)
	require.NoError(t, err)
	k := rest.Mass() / p.Mass()
	testutil.RequireNear(t, out.Px(), k*p.Px(), 1e-12)
	testutil.RequireNear(t, out.Py(), k*p.Py(), 1e-12)
	testutil.RequireNear(t, out.Pz(), k*p.Pz(), 1e-12)
	testutil.RequireNear(t, out.E(), k*p.E(), 1e-12)

	back, err := out.BoostBeta3(p.ToBeta3().Neg())
	require.NoError(t, err)
	assert.True(t, back.IsClose(rest, vector.WithAbsTol(1e-12)))

	_, err = rest.BoostBeta3(vector.NewBeta3(0.8, 0.6, 0.1))
	assert.True(t, errors.Is(err, lorentz.ErrSuperluminal))
}

func TestTransform4D(t *testing.T) {
	p := vector.NewRhoPhiZT(2, 0.4, -1, 5)

	m, err := vector.BoostMatrix(vector.NewBeta3(0.1, 0.2, -0.3))
	require.NoError(t, err)

	viaMatrix, err := p.Transform4D(m)
	require.NoError(t, err)
	direct, err := p.BoostBeta3(vector.NewBeta3(0.1, 0.2, -0.3))
	require.NoError(t, err)
	assert.True(t, viaMatrix.IsClose(direct, vector.WithRelTol(1e-12), vector.WithAbsTol(1e-12)))

	_, err = p.Transform4D(mat.NewDense(3, 3, nil))
	assert.True(t, errors.Is(err, lorentz.ErrBadMatrix))
}

func TestBeamAxisInEtaSystems(t *testing.T) {
	rest := vector.NewPtEtaPhiM(0, 0, 0, 1)
	testutil.RequireNear(t, rest.E(), 1, eps)
	testutil.RequireNear(t, rest.Pz(), 0, eps)

	_, err := rest.BoostZ(0.6)
	assert.True(t, errors.Is(err, coords.ErrBeamAxis), "%v", err)

	cart, err := rest.To(coords.Cartesian4)
	require.NoError(t, err)
	moving, err := cart.BoostZ(0.6)
	require.NoError(t, err)
	testutil.RequireNear(t, moving.E(), 1.25, eps)
	testutil.RequireNear(t, moving.Pz(), 0.75, eps)
	testutil.RequireNear(t, moving.Mass(), 1, eps)

	_, err = moving.To(coords.System4{Az: coords.XY, Lo: coords.Theta, Te: coords.T})
	assert.True(t, errors.Is(err, coords.ErrBeamAxis), "%v", err)
	_, err = moving.To(coords.System4{Az: coords.RhoPhi, Lo: coords.Eta, Te: coords.Tau})
	assert.True(t, errors.Is(err, coords.ErrBeamAxis), "%v", err)

	cyl, err := moving.To(coords.System4{Az: coords.RhoPhi, Lo: coords.Z, Te: coords.Tau})
	require.NoError(t, err)
	testutil.RequireNear(t, cyl.Mass(), 1, eps)
	testutil.RequireNear(t, cyl.E(), 1.25, eps)
}

func TestZeroValue(t *testing.T) {
	var v vector.Lorentz
	zero := vector.NewXYZT(0, 0, 0, 0)

	assert.Equal(t, coords.Cartesian4, v.System())
	assert.Equal(t, zero.Vec4(), v.Vec4())
	assert.Equal(t, 0.0, v.T())
	assert.Equal(t, 0.0, v.Tau())
	assert.Equal(t, 0.0, v.Pt())
	assert.True(t, v.Equal(zero))
	assert.False(t, v.NotEqual(zero))
	assert.True(t, v.IsLightlike())
	assert.Equal(t, "xy-z-t(0, 0, 0, 0)", v.String())

	p := vector.NewXYZT(1, 2, 3, 10)
	assert.True(t, v.Add(p).Equal(p))
	assert.True(t, p.Add(v).Equal(p))
	testutil.RequireNear(t, p.Dot(v), 0, eps)

	boosted, err := v.BoostZ(0.5)
	require.NoError(t, err)
	assert.True(t, boosted.Equal(zero))

	moved, err := p.BoostBeta3(vector.Spatial{})
	require.NoError(t, err)
	assert.True(t, moved.Equal(p))

	var s vector.Spatial
	assert.Equal(t, coords.Cartesian3, s.System())
	assert.Equal(t, 0.0, s.Mag())
}

func TestPhiIsNormalized(t *testing.T) {
	v := vector.NewXYZT(-1, math.Copysign(0, -1), 0, 2)
	assert.Equal(t, math.Pi, v.Phi())
	assert.Equal(t, math.Pi, v.Spatial().Phi())
}
