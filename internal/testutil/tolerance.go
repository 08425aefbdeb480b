package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-lorentz/coords"
)

// Near reports whether got is within eps of want, absolutely for values
// below 1 in magnitude and relatively above. Equal infinities and two NaNs
// count as near.
func Near(got, want, eps float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	if got == want {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(got), math.Abs(want)))
	return math.Abs(got-want) <= eps*scale
}

// RequireNear fails t unless Near(got, want, eps).
func RequireNear(t *testing.T, got, want, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	if !Near(got, want, eps) {
		t.Fatalf("%sgot %v, want %v (eps %v)", prefix(msgAndArgs), got, want, eps)
	}
}

// RequireVec4Near fails t if the Cartesian components of got and want differ
// by more than eps (see Near).
func RequireVec4Near(t *testing.T, got, want coords.Vec4, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	gx, gy, gz, gt := got.Cartesian()
	wx, wy, wz, wt := want.Cartesian()
	g := [4]float64{gx, gy, gz, gt}
	w := [4]float64{wx, wy, wz, wt}
	for i := range g {
		if !Near(g[i], w[i], eps) {
			t.Fatalf("%scomponent %d: got %v, want %v (eps %v)", prefix(msgAndArgs), i, got, want, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not Near.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !Near(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func prefix(msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs...) + ": "
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
}
