package batch

import (
	"sync"

	"github.com/cwbudde/algo-lorentz/batch/internal/arch/registry"
	"github.com/cwbudde/algo-lorentz/internal/cpu"
	log "github.com/sirupsen/logrus"

	_ "github.com/cwbudde/algo-lorentz/batch/internal/arch/accel"
	_ "github.com/cwbudde/algo-lorentz/batch/internal/arch/generic"
)

var (
	kernelSet  *registry.OpEntry
	kernelOnce sync.Once
	kernelMu   sync.Mutex
)

func selectKernels() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("batch: no block kernels registered")
	}
	log.WithFields(log.Fields{
		"kernels": entry.Name,
		"simd":    entry.SIMDLevel,
		"arch":    features.Architecture,
	}).Debug("batch: selected block kernels")
	kernelSet = entry
}

func kernels() *registry.OpEntry {
	kernelMu.Lock()
	defer kernelMu.Unlock()
	kernelOnce.Do(selectKernels)
	return kernelSet
}

// KernelName reports which kernel set serves block operations.
func KernelName() string {
	return kernels().Name
}

// resetKernels makes the next operation repeat kernel selection.
func resetKernels() {
	kernelMu.Lock()
	defer kernelMu.Unlock()
	kernelOnce = sync.Once{}
	kernelSet = nil
}
