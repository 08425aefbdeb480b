package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lorentz/coords"
)

// Systems4 returns every concrete 4-vector coordinate system.
func Systems4() []coords.System4 {
	var out []coords.System4
	for _, az := range []coords.Azimuthal{coords.XY, coords.RhoPhi} {
		for _, lo := range []coords.Longitudinal{coords.Z, coords.Theta, coords.Eta} {
			for _, te := range []coords.Temporal{coords.T, coords.Tau} {
				out = append(out, coords.System4{Az: az, Lo: lo, Te: te})
			}
		}
	}
	return out
}

// DeterministicMomenta generates n on-shell, timelike Cartesian 4-momenta
// with a fixed seed. Momentum components lie in [-scale, scale] and masses
// in [scale/20, scale/5].
func DeterministicMomenta(seed int64, scale float64, n int) (x, y, z, t []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	t = make([]float64, n)

	for i := 0; i < n; i++ {
		x[i] = (rng.Float64()*2 - 1) * scale
		y[i] = (rng.Float64()*2 - 1) * scale
		z[i] = (rng.Float64()*2 - 1) * scale
		m := scale/20 + rng.Float64()*(scale/5-scale/20)
		t[i] = math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i] + m*m)
	}

	return x, y, z, t
}

// DeterministicVectors is DeterministicMomenta expressed in sys.
func DeterministicVectors(seed int64, scale float64, n int, sys coords.System4) []coords.Vec4 {
	x, y, z, t := DeterministicMomenta(seed, scale, n)
	out := make([]coords.Vec4, n)
	for i := range out {
		out[i] = coords.FromCartesian4(sys, x[i], y[i], z[i], t[i])
	}
	return out
}
