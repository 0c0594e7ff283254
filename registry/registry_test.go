package registry_test

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numops/builtin"
	"numops/registry"
)

type currency int64

type currencu int64 // a typo away from currency, for the suggestion test

// stubOps satisfies the interface through embedding; only Type is real.
// Tests that use it never call the operation methods.
type stubOps struct {
	registry.Operations
	typ reflect.Type
	tag string
}

func (s *stubOps) Type() reflect.Type { return s.typ }

func TestResolveCachesFirstWinner(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(currency(0))

	var calls atomic.Int32

	r := registry.New(registry.ProviderFunc(func(t reflect.Type) (registry.Operations, bool) {
		if t != typ {
			return nil, false
		}

		calls.Add(1)

		return &stubOps{typ: typ}, true
	}))

	const workers = 16

	impls := make([]registry.Operations, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)

		go func() {
			defer wg.Done()

			impl, err := r.Resolve(typ)
			assert.NoError(t, err)

			impls[i] = impl
		}()
	}

	wg.Wait()

	// racing resolutions may each build an instance, but exactly one wins
	// and everyone observes it
	for i := 1; i < workers; i++ {
		assert.Same(t, impls[0], impls[i])
	}

	assert.Equal(t, 1, r.Count())
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestProviderPrecedence(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(currency(0))

	first := registry.ProviderFunc(func(t reflect.Type) (registry.Operations, bool) {
		return &stubOps{typ: typ, tag: "first"}, t == typ
	})
	second := registry.ProviderFunc(func(t reflect.Type) (registry.Operations, bool) {
		return &stubOps{typ: typ, tag: "second"}, t == typ
	})

	r := registry.New(first, second)

	impl, err := r.Resolve(typ)
	require.NoError(t, err)
	assert.Equal(t, "first", impl.(*stubOps).tag)
}

func TestRegisterOnExistingFails(t *testing.T) {
	t.Parallel()

	r := registry.New(builtin.Provider())

	intType := registry.TypeFor[int]()
	err := r.Register(intType, &stubOps{typ: intType})
	require.ErrorIs(t, err, registry.ErrAlreadyRegistered)

	typ := reflect.TypeOf(currency(0))
	require.NoError(t, r.Register(typ, &stubOps{typ: typ}))

	err = r.Register(typ, &stubOps{typ: typ})
	require.ErrorIs(t, err, registry.ErrAlreadyRegistered)
}

func TestRegisterRejectsMismatch(t *testing.T) {
	t.Parallel()

	r := registry.New()
	typ := reflect.TypeOf(currency(0))

	err := r.Register(typ, &stubOps{typ: registry.TypeFor[int]()})
	require.ErrorIs(t, err, registry.ErrProviderMismatch)

	err = r.Register(typ, nil)
	require.ErrorIs(t, err, registry.ErrProviderMismatch)
}

func TestResolveRejectsLyingProvider(t *testing.T) {
	t.Parallel()

	r := registry.New(registry.ProviderFunc(func(reflect.Type) (registry.Operations, bool) {
		return &stubOps{typ: registry.TypeFor[int]()}, true
	}))

	_, err := r.Resolve(reflect.TypeOf(currency(0)))
	require.ErrorIs(t, err, registry.ErrProviderMismatch)
}

func TestRegisterProviderConcurrentAppend(t *testing.T) {
	t.Parallel()

	r := registry.New()

	const workers = 8

	// distinct array types stand in for distinct user types
	types := make([]reflect.Type, workers)
	for i := range types {
		types[i] = reflect.ArrayOf(i+1, registry.TypeFor[int]())
	}

	var wg sync.WaitGroup
	for _, typ := range types {
		typ := typ
		wg.Add(1)

		go func() {
			defer wg.Done()

			r.RegisterProvider(registry.ProviderFunc(func(t reflect.Type) (registry.Operations, bool) {
				if t != typ {
					return nil, false
				}

				return &stubOps{typ: typ}, true
			}))
		}()
	}

	wg.Wait()

	// no append was lost
	for _, typ := range types {
		_, err := r.Resolve(typ)
		assert.NoError(t, err)
	}
}

func TestRequireNamesBaselineAndExtensionPoints(t *testing.T) {
	t.Parallel()

	r := registry.New()

	_, err := r.Require(reflect.TypeOf(currency(0)))
	require.ErrorIs(t, err, registry.ErrNotFound)
	assert.Contains(t, err.Error(), "built-in types are")
	assert.Contains(t, err.Error(), "RegisterProvider")
}

func TestRequireSuggestsClosestType(t *testing.T) {
	t.Parallel()

	r := registry.New()
	typ := reflect.TypeOf(currency(0))
	require.NoError(t, r.Register(typ, &stubOps{typ: typ}))

	_, err := r.Require(reflect.TypeOf(currencu(0)))
	require.ErrorIs(t, err, registry.ErrNotFound)
	assert.Contains(t, err.Error(), "closest registered type: registry_test.currency")
}

func TestEntriesSnapshot(t *testing.T) {
	t.Parallel()

	r := registry.New(builtin.Provider())

	_, err := r.Resolve(registry.TypeFor[int8]())
	require.NoError(t, err)
	_, err = r.Resolve(registry.TypeFor[float64]())
	require.NoError(t, err)

	entries := r.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, r.Count(), len(entries))
}
