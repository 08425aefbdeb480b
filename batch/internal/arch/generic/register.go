package generic

import (
	"github.com/cwbudde/algo-lorentz/batch/internal/arch/registry"
	"github.com/cwbudde/algo-lorentz/internal/cpu"
)

// Entry is the generic kernel set.
var Entry = registry.OpEntry{
	Name:      "generic",
	SIMDLevel: cpu.SIMDNone,
	Priority:  0,

	AddBlock:    AddBlock,
	SubBlock:    SubBlock,
	MulBlock:    MulBlock,
	ScaleBlock:  ScaleBlock,
	AddMulBlock: AddMulBlock,
	MulAddBlock: MulAddBlock,
	Magnitude:   Magnitude,
	Power:       Power,
}

func init() {
	registry.Global.Register(Entry)
}
