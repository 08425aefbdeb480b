package coords

import "math"

// NormalizePhi maps phi into (-pi, pi].
func NormalizePhi(phi float64) float64 {
	if math.IsNaN(phi) || math.IsInf(phi, 0) {
		return phi
	}

	r := math.Remainder(phi, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}

	return r
}

// ZFromTheta returns z for a transverse magnitude rho and polar angle theta.
// On the beam axis (rho == 0) z is only defined for theta == pi/2, where it
// is 0; theta of 0 or pi yields NaN.
func ZFromTheta(rho, theta float64) float64 {
	if rho == 0 && (theta == 0 || theta == math.Pi) {
		return math.NaN()
	}

	return rho / math.Tan(theta)
}

// ZFromEta returns z for a transverse magnitude rho and pseudorapidity eta.
// On the beam axis eta is infinite and the result is NaN.
func ZFromEta(rho, eta float64) float64 {
	return rho * math.Sinh(eta)
}

// ThetaOf returns the polar angle of (rho, z), in [0, pi]. The null vector
// gets pi/2 so that [ZFromTheta] recovers z == 0.
func ThetaOf(rho, z float64) float64 {
	if rho == 0 && z == 0 {
		return math.Pi / 2
	}

	return math.Atan2(rho, z)
}

// EtaOf returns the pseudorapidity of (rho, z). On the beam axis the result
// is +/-Inf with the sign of z, and 0 for the null vector.
func EtaOf(rho, z float64) float64 {
	if rho == 0 {
		if z == 0 {
			return 0
		}
		return math.Copysign(math.Inf(1), z)
	}

	return math.Asinh(z / rho)
}

// SignedSqrt returns copysign(sqrt(|x|), x).
func SignedSqrt(x float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(x)), x)
}

// TauOf returns the signed proper time for temporal component t and
// squared spatial magnitude mag2. Spacelike vectors give negative values.
func TauOf(t, mag2 float64) float64 {
	return SignedSqrt(t*t - mag2)
}

// TOf inverts [TauOf]: t = sqrt(max(copysign(tau^2, tau) + mag2, 0)).
func TOf(tau, mag2 float64) float64 {
	return math.Sqrt(math.Max(math.Copysign(tau*tau, tau)+mag2, 0))
}
