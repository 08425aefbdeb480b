//go:build (amd64 || arm64) && !purego

package accel

import (
	"github.com/cwbudde/algo-lorentz/batch/internal/arch/generic"
	"github.com/cwbudde/algo-lorentz/batch/internal/arch/registry"
	"github.com/cwbudde/algo-lorentz/internal/cpu"
	"github.com/cwbudde/algo-vecmath"
)

func entry(level cpu.SIMDLevel, priority int) registry.OpEntry {
	return registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: level,
		Priority:  priority,

		AddBlock:    vecmath.AddBlock,
		SubBlock:    generic.SubBlock,
		MulBlock:    vecmath.MulBlock,
		ScaleBlock:  vecmath.ScaleBlock,
		AddMulBlock: vecmath.AddMulBlock,
		MulAddBlock: vecmath.MulAddBlock,
		Magnitude:   vecmath.Magnitude,
		Power:       vecmath.Power,
	}
}
