// Package cpu reports the SIMD extensions available for batch kernels.
//
// Detection runs once and is cached. Setting ALGO_LORENTZ_GENERIC=1 in the
// environment forces the pure Go kernels, as does SetForcedFeatures in
// tests.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// GenericEnv names the environment variable that disables SIMD kernels.
const GenericEnv = "ALGO_LORENTZ_GENERIC"

// SIMDLevel is an instruction set extension a kernel set may require.
type SIMDLevel int

const (
	// SIMDNone requires nothing; the pure Go kernels.
	SIMDNone SIMDLevel = iota
	// SIMDSSE2 requires SSE2 (baseline on amd64).
	SIMDSSE2
	// SIMDAVX requires AVX.
	SIMDAVX
	// SIMDAVX2 requires AVX2.
	SIMDAVX2
	// SIMDNEON requires ARM NEON (baseline on arm64).
	SIMDNEON
)

func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX:
		return "avx"
	case SIMDAVX2:
		return "avx2"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes the processor.
type Features struct {
	HasSSE2 bool // SSE2 available
	HasAVX  bool // AVX available
	HasAVX2 bool // AVX2 available
	HasNEON bool // NEON available

	// ForceGeneric restricts selection to SIMDNone.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detected   Features
	detectOnce sync.Once
	detectMu   sync.Mutex

	forced   *Features
	forcedMu sync.RWMutex
)

// DetectFeatures returns the cached features of this machine, or the
// features set by SetForcedFeatures.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()
	if f != nil {
		return *f
	}

	detectMu.Lock()
	defer detectMu.Unlock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		detected.ForceGeneric = envForcesGeneric()
	})
	return detected
}

func envForcesGeneric() bool {
	v, ok := os.LookupEnv(GenericEnv)
	if !ok {
		return false
	}
	on, err := strconv.ParseBool(v)
	return err == nil && on
}

// SetForcedFeatures overrides detection until ResetDetection.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = &f
}

// ResetDetection drops forced features and the detection cache.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMu.Unlock()
}

// Supports reports whether features can run kernels built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
