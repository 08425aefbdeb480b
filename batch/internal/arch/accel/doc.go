// Package accel registers the algo-vecmath block kernels. algo-vecmath
// picks its own SSE2, AVX2 or NEON code path at runtime, so a single entry
// per architecture covers every level it supports.
//
// Subtraction has no vecmath counterpart and uses the generic kernel.
package accel
