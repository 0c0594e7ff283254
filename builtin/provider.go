// Package builtin holds the operations implementations for the fixed
// built-in numeric set: the signed and unsigned fixed-width integers, the
// IEEE floats, *big.Int, and the fixed-point decimal. The generic facade
// short-circuits this package entirely on its fast path; these
// implementations serve the registry route and the composite adapters that
// delegate to them.
package builtin

import (
	"fmt"
	"math"
	"reflect"

	"numops/registry"
)

var table map[reflect.Type]registry.Operations

func init() {
	impls := []registry.Operations{
		newSignedOps[int](math.MinInt, math.MaxInt),
		newSignedOps[int8](math.MinInt8, math.MaxInt8),
		newSignedOps[int16](math.MinInt16, math.MaxInt16),
		newSignedOps[int32](math.MinInt32, math.MaxInt32),
		newSignedOps[int64](math.MinInt64, math.MaxInt64),
		newUnsignedOps[uint](),
		newUnsignedOps[uint8](),
		newUnsignedOps[uint16](),
		newUnsignedOps[uint32](),
		newUnsignedOps[uint64](),
		newFloatOps[float32](math.MaxFloat32),
		newFloatOps[float64](math.MaxFloat64),
		bigOps{},
		decimalOps{},
	}

	table = make(map[reflect.Type]registry.Operations, len(impls))
	for _, impl := range impls {
		table[impl.Type()] = impl
	}
}

// For returns the implementation for a built-in numeric type.
func For(t reflect.Type) (registry.Operations, bool) {
	impl, ok := table[t]

	return impl, ok
}

// Provider resolves exactly the fixed built-in set. It is the first link of
// the standard provider chain.
func Provider() registry.Provider {
	return registry.ProviderFunc(For)
}

func unsupported(op string, t reflect.Type) error {
	return fmt.Errorf("%w: %s on %s", registry.ErrUnsupportedOperation, op, t)
}
