package batch_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-lorentz/batch"
	"github.com/cwbudde/algo-lorentz/compute/lorentz"
	"github.com/cwbudde/algo-lorentz/internal/testutil"
	"github.com/cwbudde/algo-lorentz/vector"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func sample(seed int64, n int) batch.Momenta {
	x, y, z, t := testutil.DeterministicMomenta(seed, 50, n)
	return batch.Momenta{X: x, Y: y, Z: z, T: t}
}

func TestFromVectorsRoundTrip(t *testing.T) {
	vs := []vector.Lorentz{
		vector.NewXYZT(1, 2, 3, 10),
		vector.NewPtEtaPhiM(5, 0.4, -1, 2),
		vector.NewRhoPhiZT(3, 2, -4, 9),
	}
	m := batch.FromVectors(vs)
	require.Equal(t, 3, m.Len())
	require.NoError(t, m.Validate())

	for i, v := range m.Vectors() {
		testutil.RequireNear(t, v.Px(), vs[i].Px(), 1e-12, i)
		testutil.RequireNear(t, v.Py(), vs[i].Py(), 1e-12, i)
		testutil.RequireNear(t, v.Pz(), vs[i].Pz(), 1e-12, i)
		testutil.RequireNear(t, v.E(), vs[i].E(), 1e-12, i)
	}
}

func TestValidate(t *testing.T) {
	m := batch.New(4)
	assert.NoError(t, m.Validate())

	m.Y = m.Y[:3]
	err := m.Validate()
	assert.True(t, errors.Is(err, batch.ErrLengthMismatch))
	assert.PanicsWithValue(t, err.Error(), func() { m.Pt(nil) })
}

func TestScalarsMatchVectorKernels(t *testing.T) {
	const n = 37
	m := sample(7, n)

	tau2 := m.Tau2(nil)
	tau := m.Tau(nil)
	mt2 := m.Mt2(nil)
	pt := m.Pt(nil)
	pt2 := m.Pt2(nil)
	rap := m.Rapidity(nil)

	for i := 0; i < n; i++ {
		v := m.At(i)
		testutil.RequireNear(t, tau2[i], v.Tau2(), tol, "tau2 %d", i)
		testutil.RequireNear(t, tau[i], v.Tau(), tol, "tau %d", i)
		testutil.RequireNear(t, mt2[i], v.Mt2(), tol, "mt2 %d", i)
		testutil.RequireNear(t, pt[i], v.Pt(), tol, "pt %d", i)
		testutil.RequireNear(t, pt2[i], v.Rho()*v.Rho(), tol, "pt2 %d", i)
		testutil.RequireNear(t, rap[i], v.Rapidity(), tol, "rapidity %d", i)
	}
}

func TestTauSignedForSpacelike(t *testing.T) {
	m := batch.FromVectors([]vector.Lorentz{
		vector.NewXYZT(0, 0, 5, 3),
		vector.NewXYZT(0, 0, 3, 5),
	})
	tau := m.Tau(nil)
	testutil.RequireNear(t, tau[0], -4, 1e-12)
	testutil.RequireNear(t, tau[1], 4, 1e-12)
}

func TestPairwise(t *testing.T) {
	const n = 21
	a := sample(1, n)
	b := sample(2, n)

	sum := batch.Add(nil, a, b)
	diff := batch.Subtract(nil, a, b)
	scaled := batch.Scale(nil, a, -2.5)
	dots := batch.Dot(nil, a, b)

	for i := 0; i < n; i++ {
		va, vb := a.At(i), b.At(i)
		assert.True(t, sum.At(i).IsClose(va.Add(vb)), "add %d", i)
		assert.True(t, diff.At(i).IsClose(va.Subtract(vb)), "subtract %d", i)
		assert.True(t, scaled.At(i).IsClose(va.Scale(-2.5)), "scale %d", i)
		testutil.RequireNear(t, dots[i], va.Dot(vb), tol, "dot %d", i)
	}
}

func TestInPlace(t *testing.T) {
	a := sample(3, 8)
	b := sample(4, 8)
	want := batch.Add(nil, a, b)

	got := batch.Add(&a, a, b)
	testutil.RequireSliceNearlyEqual(t, got.T, want.T, 0)
	testutil.RequireSliceNearlyEqual(t, a.X, want.X, 0)

	dst := make([]float64, 8)
	out := b.Pt(dst)
	assert.Same(t, &dst[0], &out[0])
}

func TestLengthMismatchPanics(t *testing.T) {
	a := sample(1, 4)
	b := sample(2, 5)

	assert.PanicsWithValue(t, "batch: length mismatch", func() { batch.Add(nil, a, b) })
	assert.PanicsWithValue(t, "batch: length mismatch", func() { batch.Dot(nil, a, b) })
	assert.PanicsWithValue(t, "batch: length mismatch", func() { a.Tau2(make([]float64, 3)) })
}

func TestBoostZ(t *testing.T) {
	const n = 16
	m := sample(11, n)

	boosted, err := batch.BoostZ(nil, m, -0.35)
	require.NoError(t, err)

	before := m.Tau(nil)
	after := boosted.Tau(nil)
	testutil.RequireSliceNearlyEqual(t, after, before, 1e-9)

	for i := 0; i < n; i++ {
		want, err := m.At(i).BoostZ(-0.35)
		require.NoError(t, err)
		assert.True(t, boosted.At(i).IsClose(want), "boost %d", i)
	}

	inPlace, err := batch.BoostZ(&m, m, -0.35)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, inPlace.Z, boosted.Z, 0)
	testutil.RequireSliceNearlyEqual(t, m.T, boosted.T, 0)

	_, err = batch.BoostZ(nil, m, 1)
	assert.True(t, errors.Is(err, lorentz.ErrSuperluminal))
	_, err = batch.BoostZ(nil, m, math.NaN())
	assert.True(t, errors.Is(err, lorentz.ErrSuperluminal))
}

func TestSum(t *testing.T) {
	vs := []vector.Lorentz{
		vector.NewXYZT(1, 0, 0, 2),
		vector.NewXYZT(-1, 0, 0, 2),
		vector.NewXYZT(0, 3, 4, 6),
	}
	total := batch.FromVectors(vs).Sum()
	assert.True(t, total.IsClose(vector.Sum(vs...)))
	assert.True(t, batch.New(0).Sum().Equal(vector.NewXYZT(0, 0, 0, 0)))
}

func BenchmarkTau(b *testing.B) {
	for _, size := range []int{16, 1024, 65536} {
		m := sample(1, size)
		dst := make([]float64, size)
		b.Run(testName(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8 * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Tau(dst)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, size := range []int{16, 1024, 65536} {
		m := sample(1, size)
		o := sample(2, size)
		dst := make([]float64, size)
		b.Run(testName(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8 * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				batch.Dot(dst, m, o)
			}
		})
	}
}

func BenchmarkBoostZ(b *testing.B) {
	m := sample(1, 4096)
	dst := batch.New(4096)
	b.SetBytes(4096 * 8 * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := batch.BoostZ(&dst, m, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}

func testName(n int) string {
	if n >= 1<<10 && n%(1<<10) == 0 {
		return strconv.Itoa(n>>10) + "K"
	}
	return strconv.Itoa(n)
}
