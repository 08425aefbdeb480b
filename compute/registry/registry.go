// Package registry provides the shared dispatch registry for Lorentz-vector
// compute kernels.
//
// Each kernel is registered under an operation name (for example "tau" or
// "boostZ_beta") together with a signature: one coordinate-system pattern per
// 4-vector operand. Kernel packages register themselves via init() functions,
// so importing a kernel package is enough to make its operations available
// system-wide.
//
// At call time, Lookup selects the highest-priority entry whose signature
// matches the coordinate systems of the operands. Generic kernels register
// wildcard signatures at priority 0; kernels specialised for one storage
// layout register concrete signatures at higher priorities.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownOp is returned for operation names that were never registered.
	ErrUnknownOp = errors.New("registry: unknown operation")

	// ErrNoKernel is returned when an operation is known but no registered
	// signature matches the operands.
	ErrNoKernel = errors.New("registry: no kernel for operand systems")
)

// Signature holds one coordinate-system pattern per 4-vector operand.
// Wildcard fields (the zero values) match any concrete coordinate.
type Signature []coords.System4

// Matches reports whether systems satisfy the signature. The number of
// operands must equal the signature length.
func (s Signature) Matches(systems []coords.System4) bool {
	if len(s) != len(systems) {
		return false
	}

	for i, pattern := range s {
		sys := systems[i]
		if pattern.Az != coords.AnyAzimuthal && pattern.Az != sys.Az {
			return false
		}
		if pattern.Lo != coords.AnyLongitudinal && pattern.Lo != sys.Lo {
			return false
		}
		if pattern.Te != coords.AnyTemporal && pattern.Te != sys.Te {
			return false
		}
	}

	return true
}

// Equal reports whether two signatures are identical.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, sys := range s {
		parts[i] = sys.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// OpEntry represents one registered kernel variant.
type OpEntry struct {
	// Op is the operation name, e.g. "boost_p4".
	Op string

	// Name identifies the variant, e.g. "generic" or "xy-z-t".
	Name string

	// Signature restricts the operand coordinate systems this kernel accepts.
	Signature Signature

	// Priority determines selection order when several signatures match.
	// Suggested priorities:
	//   - Generic (wildcards only): 0
	//   - Partially specialised:    5
	//   - Fully specialised:        10
	Priority int

	// Kernel computes the operation.
	Kernel Kernel
}

// OpRegistry manages registration and lookup of kernels.
//
// Registration normally happens in init() functions. Lookup is safe for
// concurrent use and sorts each operation's entries lazily on first use.
type OpRegistry struct {
	mu      sync.RWMutex
	entries map[string][]OpEntry
	sorted  map[string]bool
}

// Global is the registry populated by the kernel packages.
var Global = &OpRegistry{}

// Register adds a kernel variant to the registry.
//
// An entry with the same operation, signature and priority as an existing
// one replaces it. Register panics on an empty operation name or a nil
// kernel, which makes a broken kernel package fail at program start.
func (r *OpRegistry) Register(entry OpEntry) {
	if entry.Op == "" {
		panic("registry: empty operation name")
	}
	if entry.Kernel == nil {
		panic("registry: nil kernel for " + entry.Op)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string][]OpEntry)
		r.sorted = make(map[string]bool)
	}

	list := r.entries[entry.Op]
	for i := range list {
		if list[i].Priority == entry.Priority && list[i].Signature.Equal(entry.Signature) {
			logrus.WithFields(logrus.Fields{
				"op":        entry.Op,
				"signature": entry.Signature.String(),
				"replaced":  list[i].Name,
				"by":        entry.Name,
			}).Warn("replacing registered kernel")
			list[i] = entry
			return
		}
	}

	r.entries[entry.Op] = append(list, entry)
	r.sorted[entry.Op] = false

	logrus.WithFields(logrus.Fields{
		"op":        entry.Op,
		"variant":   entry.Name,
		"signature": entry.Signature.String(),
		"priority":  entry.Priority,
	}).Debug("registered kernel")
}

// Lookup finds the best kernel for op given the operand coordinate systems.
//
// The returned entry is a copy; later registrations do not affect it.
func (r *OpRegistry) Lookup(op string, systems ...coords.System4) (*OpEntry, error) {
	r.mu.RLock()
	if _, ok := r.entries[op]; !ok || r.sorted[op] {
		defer r.mu.RUnlock()
		return r.find(op, systems)
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sorted[op] {
		r.sortByPriority(op)
		r.sorted[op] = true
	}
	return r.find(op, systems)
}

// find returns a copy of the first entry of op matching systems.
// Must be called with r.mu held.
func (r *OpRegistry) find(op string, systems []coords.System4) (*OpEntry, error) {
	list, ok := r.entries[op]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "lookup %q", op)
	}

	for i := range list {
		if list[i].Signature.Matches(systems) {
			entry := list[i]
			return &entry, nil
		}
	}

	return nil, errors.Wrapf(ErrNoKernel, "lookup %q for %s", op, Signature(systems))
}

// Dispatch selects the kernel for op from the operand systems in args and
// runs it.
func (r *OpRegistry) Dispatch(op string, args Args) (Result, error) {
	systems := make([]coords.System4, len(args.Vectors))
	for i, v := range args.Vectors {
		if !v.Sys.Valid() {
			return Result{}, errors.Wrapf(coords.ErrInvalidSystem, "dispatch %q: operand %d is %s", op, i, v.Sys)
		}
		systems[i] = v.Sys
	}

	entry, err := r.Lookup(op, systems...)
	if err != nil {
		return Result{}, err
	}

	res, err := entry.Kernel(args)
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s[%s]", op, entry.Name)
	}

	return res, nil
}

// sortByPriority sorts the entries of op by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority(op string) {
	list := r.entries[op]
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority > list[j].Priority
	})
}

// Ops returns the registered operation names in lexical order.
func (r *OpRegistry) Ops() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]string, 0, len(r.entries))
	for op := range r.entries {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Has reports whether at least one kernel is registered for op.
func (r *OpRegistry) Has(op string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries[op]) > 0
}

// ListEntries returns a copy of all entries, grouped by operation name and
// ordered by descending priority within each operation.
// This function is primarily intended for tooling and tests.
func (r *OpRegistry) ListEntries() []OpEntry {
	var out []OpEntry
	for _, op := range r.Ops() {
		r.mu.RLock()
		list := make([]OpEntry, len(r.entries[op]))
		copy(list, r.entries[op])
		r.mu.RUnlock()

		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority > list[j].Priority
		})
		out = append(out, list...)
	}
	return out
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = nil
}
