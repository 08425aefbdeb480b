// Package registry holds the block kernels used by the batch package.
//
// Kernel sets register themselves from init() in their arch packages. The
// batch package asks for the highest-priority set the current CPU supports
// and caches the function pointers it needs.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-lorentz/internal/cpu"
)

// OpEntry is one kernel set. Every field must be populated: a set that has
// no accelerated version of an operation points at the generic one.
type OpEntry struct {
	// Name identifies the set in logs and tests ("generic", "vecmath").
	Name string

	// SIMDLevel is the instruction set the set requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible sets; higher wins.
	Priority int

	// AddBlock computes dst[i] = a[i] + b[i].
	AddBlock func(dst, a, b []float64)

	// SubBlock computes dst[i] = a[i] - b[i].
	SubBlock func(dst, a, b []float64)

	// MulBlock computes dst[i] = a[i] * b[i].
	MulBlock func(dst, a, b []float64)

	// ScaleBlock computes dst[i] = src[i] * scalar.
	ScaleBlock func(dst, src []float64, scalar float64)

	// AddMulBlock computes dst[i] = (a[i] + b[i]) * scalar.
	AddMulBlock func(dst, a, b []float64, scalar float64)

	// MulAddBlock computes dst[i] = a[i] * b[i] + c[i].
	MulAddBlock func(dst, a, b, c []float64)

	// Magnitude computes dst[i] = sqrt(a[i]^2 + b[i]^2).
	Magnitude func(dst, a, b []float64)

	// Power computes dst[i] = a[i]^2 + b[i]^2.
	Power func(dst, a, b []float64)
}

// OpRegistry stores kernel sets.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry the batch package reads from.
var Global = &OpRegistry{}

// Register adds a kernel set.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority set compatible with features, or nil
// when none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		sort.SliceStable(r.entries, func(i, j int) bool {
			return r.entries[i].Priority > r.entries[j].Priority
		})
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			entry := r.entries[i]
			return &entry
		}
	}

	return nil
}

// ListEntries returns a copy of the registered sets.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
