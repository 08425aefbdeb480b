package registry

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	anySys  = coords.System4{}
	cart    = coords.Cartesian4
	ptEtaM  = coords.System4{Az: coords.RhoPhi, Lo: coords.Eta, Te: coords.Tau}
	tauOnly = coords.System4{Te: coords.Tau}
)

func constKernel(x float64) Kernel {
	return func(Args) (Result, error) { return Scalar(x), nil }
}

func TestOpRegistry_Register(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Op: "tau", Name: "generic", Signature: Signature{anySys}, Kernel: constKernel(1)})
	reg.Register(OpEntry{Op: "tau", Name: "tau", Signature: Signature{tauOnly}, Priority: 5, Kernel: constKernel(2)})
	reg.Register(OpEntry{Op: "dot", Name: "generic", Signature: Signature{anySys, anySys}, Kernel: constKernel(3)})

	entries := reg.ListEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"dot", "tau"}, reg.Ops())
	assert.True(t, reg.Has("dot"))
	assert.False(t, reg.Has("gamma"))

	// grouped by op, highest priority first
	assert.Equal(t, "dot", entries[0].Op)
	assert.Equal(t, "tau", entries[1].Name)
	assert.Equal(t, "generic", entries[2].Name)
}

func TestOpRegistry_RegisterPanics(t *testing.T) {
	reg := &OpRegistry{}

	assert.Panics(t, func() { reg.Register(OpEntry{Kernel: constKernel(0)}) })
	assert.Panics(t, func() { reg.Register(OpEntry{Op: "t"}) })
}

func TestOpRegistry_RegisterReplaces(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Op: "t", Name: "first", Signature: Signature{anySys}, Kernel: constKernel(1)})
	reg.Register(OpEntry{Op: "t", Name: "second", Signature: Signature{anySys}, Kernel: constKernel(2)})

	entries := reg.ListEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Name)
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// registered out of priority order to exercise sorting
	reg.Register(OpEntry{Op: "t", Name: "generic", Signature: Signature{anySys}, Kernel: constKernel(0)})
	reg.Register(OpEntry{Op: "t", Name: "xy-z-t", Signature: Signature{cart}, Priority: 10, Kernel: constKernel(0)})
	reg.Register(OpEntry{Op: "t", Name: "tau", Signature: Signature{tauOnly}, Priority: 5, Kernel: constKernel(0)})

	tests := []struct {
		name string
		sys  coords.System4
		want string
	}{
		{name: "cartesian selects fully specialised", sys: cart, want: "xy-z-t"},
		{name: "tau storage selects partial", sys: ptEtaM, want: "tau"},
		{name: "other falls back to generic", sys: coords.System4{Az: coords.RhoPhi, Lo: coords.Z, Te: coords.T}, want: "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := reg.Lookup("t", tt.sys)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Name)
		})
	}
}

func TestOpRegistry_LookupErrors(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Op: "dot", Name: "cartesian", Signature: Signature{cart, cart}, Kernel: constKernel(0)})

	_, err := reg.Lookup("gamma", cart)
	assert.Equal(t, ErrUnknownOp, errors.Cause(err))

	_, err = reg.Lookup("dot", cart, ptEtaM)
	assert.Equal(t, ErrNoKernel, errors.Cause(err))

	// arity mismatch never matches
	_, err = reg.Lookup("dot", cart)
	assert.Equal(t, ErrNoKernel, errors.Cause(err))
}

func TestOpRegistry_Dispatch(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{
		Op:        "first_param",
		Name:      "generic",
		Signature: Signature{anySys},
		Kernel: func(args Args) (Result, error) {
			return Scalar(args.Param(0, -1)), nil
		},
	})

	v := coords.FromCartesian4(cart, 1, 2, 3, 4)

	res, err := reg.Dispatch("first_param", Args{Vectors: []coords.Vec4{v}, Params: []float64{7}})
	require.NoError(t, err)
	assert.Equal(t, KindScalar, res.Kind)
	assert.Equal(t, 7.0, res.Scalar)

	res, err = reg.Dispatch("first_param", Args{Vectors: []coords.Vec4{v}})
	require.NoError(t, err)
	assert.Equal(t, -1.0, res.Scalar)

	_, err = reg.Dispatch("first_param", Args{Vectors: []coords.Vec4{{}}})
	assert.Equal(t, coords.ErrInvalidSystem, errors.Cause(err))
}

func TestOpRegistry_DispatchWrapsKernelErrors(t *testing.T) {
	sentinel := errors.New("kernel failed")
	reg := &OpRegistry{}
	reg.Register(OpEntry{
		Op:        "broken",
		Name:      "generic",
		Signature: Signature{anySys},
		Kernel:    func(Args) (Result, error) { return Result{}, sentinel },
	})

	_, err := reg.Dispatch("broken", Args{Vectors: []coords.Vec4{coords.FromCartesian4(cart, 0, 0, 0, 1)}})
	require.Error(t, err)
	assert.Equal(t, sentinel, errors.Cause(err))
	assert.Contains(t, err.Error(), "broken[generic]")
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Op: "t", Signature: Signature{anySys}, Kernel: constKernel(0)})
	reg.Reset()

	assert.Empty(t, reg.ListEntries())
	_, err := reg.Lookup("t", cart)
	assert.Equal(t, ErrUnknownOp, errors.Cause(err))
}

func TestOpRegistry_ConcurrentLookup(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Op: "t", Name: "generic", Signature: Signature{anySys}, Kernel: constKernel(0)})
	reg.Register(OpEntry{Op: "t", Name: "xy-z-t", Signature: Signature{cart}, Priority: 10, Kernel: constKernel(0)})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry, err := reg.Lookup("t", cart)
			if assert.NoError(t, err) {
				assert.Equal(t, "xy-z-t", entry.Name)
			}
		}()
	}
	wg.Wait()
}

func TestOpRegistry_LookupResortsAfterRegister(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Op: "t", Name: "generic", Signature: Signature{anySys}, Kernel: constKernel(0)})

	entry, err := reg.Lookup("t", cart)
	require.NoError(t, err)
	assert.Equal(t, "generic", entry.Name)

	reg.Register(OpEntry{Op: "t", Name: "xy-z-t", Signature: Signature{cart}, Priority: 10, Kernel: constKernel(0)})

	entry, err = reg.Lookup("t", cart)
	require.NoError(t, err)
	assert.Equal(t, "xy-z-t", entry.Name)
}

func TestOpRegistry_LookupDuringRegister(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Op: "t", Name: "generic", Signature: Signature{anySys}, Kernel: constKernel(0)})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := reg.Lookup("t", cart)
				assert.NoError(t, err)
			}
		}()
		go func(priority int) {
			defer wg.Done()
			reg.Register(OpEntry{Op: "t", Name: "xy-z-t", Signature: Signature{cart}, Priority: priority, Kernel: constKernel(0)})
		}(i + 1)
	}
	wg.Wait()

	entry, err := reg.Lookup("t", cart)
	require.NoError(t, err)
	assert.Equal(t, 8, entry.Priority)
}

func TestSignatureString(t *testing.T) {
	assert.Equal(t, "(xy-z-t, any-any-tau)", Signature{cart, tauOnly}.String())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "1.5", Scalar(1.5).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "xy-z-t(1, 2, 3, 4)", Vector4(coords.FromCartesian4(cart, 1, 2, 3, 4)).String())
	assert.Equal(t, "vec3", KindVec3.String())
}
