// Package registry maps concrete numeric types to the single Operations
// implementation servicing each of them. Entries are resolved lazily through
// an ordered provider chain, installed with first-wins compare-and-set
// semantics, and never replaced or evicted for the lifetime of the process.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"numops/internal/match"
)

// builtinBaseline names the fixed supported set for unsupported-type errors.
const builtinBaseline = "int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, " +
	"float32, float64, *big.Int, decimal.Decimal"

// Registry is a process-wide, append-only cache of type to Operations
// associations. All methods are safe for concurrent use without external
// locking; contention is resolved by retry, never by waiting.
type Registry struct {
	entries   sync.Map // reflect.Type -> Operations
	providers atomic.Pointer[providerSnapshot]
}

// providerSnapshot is an immutable ordered provider list. Appending replaces
// the whole snapshot through compare-and-swap, so readers never observe a
// partially built chain.
type providerSnapshot struct {
	providers []Provider
}

// Entry is a single (type, operations) association in a registry snapshot.
type Entry struct {
	Type       reflect.Type
	Operations Operations
}

// New creates an empty registry with the given initial provider chain.
// Earlier providers take precedence over later ones.
func New(providers ...Provider) *Registry {
	r := &Registry{}
	if len(providers) > 0 {
		r.providers.Store(&providerSnapshot{providers: providers})
	}

	return r
}

// Resolve returns the implementation for t, walking the provider chain and
// caching on first use. Concurrent first resolutions of the same type race
// on a single compare-and-set slot: exactly one instance wins and losers
// return the winner, discarding their own (stateless, so discarding is
// free). A miss wraps ErrNotFound.
func (r *Registry) Resolve(t reflect.Type) (Operations, error) {
	if impl, ok := r.entries.Load(t); ok {
		return impl.(Operations), nil
	}

	if snap := r.providers.Load(); snap != nil {
		for _, p := range snap.providers {
			impl, ok := p.Provide(t)
			if !ok {
				continue
			}

			if impl == nil || impl.Type() != t {
				return nil, fmt.Errorf("%w: requested %s, got operations for %s",
					ErrProviderMismatch, typeName(t), implTypeName(impl))
			}

			winner, _ := r.entries.LoadOrStore(t, impl)

			return winner.(Operations), nil
		}
	}

	return nil, fmt.Errorf("%w for type %s", ErrNotFound, typeName(t))
}

// Require is Resolve for hot paths that cannot proceed without an
// implementation: a miss produces an error naming the built-in baseline, the
// extension points, and the closest registered type when one is plausibly
// intended.
func (r *Registry) Require(t reflect.Type) (Operations, error) {
	impl, err := r.Resolve(t)
	if err == nil {
		return impl, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	msg := fmt.Sprintf("numeric operations unsupported for type %s: built-in types are %s; "+
		"extend with Register or RegisterProvider", typeName(t), builtinBaseline)

	if hint, ok := r.closest(t); ok {
		msg += fmt.Sprintf(" (closest registered type: %s)", hint)
	}

	return nil, fmt.Errorf("%s: %w", msg, ErrNotFound)
}

// Register installs impl as the permanent implementation for t. It fails
// with ErrAlreadyRegistered when t is already resolvable, whether built-in,
// provider-supplied, or previously registered: replacing semantics under
// already-resolved callers is a correctness hazard.
func (r *Registry) Register(t reflect.Type, impl Operations) error {
	if impl == nil {
		return fmt.Errorf("%w: nil operations for %s", ErrProviderMismatch, typeName(t))
	}

	if impl.Type() != t {
		return fmt.Errorf("%w: registering %s with operations for %s",
			ErrProviderMismatch, typeName(t), implTypeName(impl))
	}

	if _, err := r.Resolve(t); err == nil {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, typeName(t))
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	if _, loaded := r.entries.LoadOrStore(t, impl); loaded {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, typeName(t))
	}

	return nil
}

// RegisterProvider appends p to the end of the provider chain through a
// read/copy-append/compare-and-swap loop. Earlier providers keep precedence;
// concurrent appends are never lost, though their mutual order is
// unspecified. The call never blocks.
func (r *Registry) RegisterProvider(p Provider) {
	if p == nil {
		panic("registry: nil provider")
	}

	for {
		old := r.providers.Load()

		next := &providerSnapshot{}
		if old != nil {
			next.providers = append(append([]Provider{}, old.providers...), p)
		} else {
			next.providers = []Provider{p}
		}

		if r.providers.CompareAndSwap(old, next) {
			return
		}
	}
}

// Entries returns a snapshot of all resolved associations for diagnostics.
// The order is unspecified.
func (r *Registry) Entries() []Entry {
	var out []Entry

	r.entries.Range(func(key, value any) bool {
		out = append(out, Entry{Type: key.(reflect.Type), Operations: value.(Operations)})
		return true
	})

	return out
}

// Count returns the number of resolved associations.
func (r *Registry) Count() int {
	n := 0

	r.entries.Range(func(any, any) bool {
		n++
		return true
	})

	return n
}

func (r *Registry) closest(t reflect.Type) (string, bool) {
	var names []string
	for _, e := range r.Entries() {
		names = append(names, typeName(e.Type))
	}

	return match.Closest(typeName(t), names)
}

func implTypeName(impl Operations) string {
	if impl == nil {
		return "<nil>"
	}

	return typeName(impl.Type())
}
