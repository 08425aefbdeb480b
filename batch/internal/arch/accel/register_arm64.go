//go:build arm64 && !purego

package accel

import (
	"github.com/cwbudde/algo-lorentz/batch/internal/arch/registry"
	"github.com/cwbudde/algo-lorentz/internal/cpu"
)

func init() {
	registry.Global.Register(entry(cpu.SIMDNEON, 15))
}
