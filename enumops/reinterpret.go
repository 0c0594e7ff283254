// Package enumops adapts named types backed by a built-in integer kind
// (enum types) to the numeric operations set by reinterpreting their storage
// as the underlying type. The reinterpretation is a zero-copy bit cast, not
// a value conversion; layout compatibility is verified once per adapter, at
// construction.
package enumops

import (
	"fmt"
	"reflect"
)

// checkSameLayout verifies that from and to share storage layout: same
// reflect kind and same size. Construction-time guard for sameLayoutCast.
func checkSameLayout(from, to reflect.Type) error {
	if from.Kind() != to.Kind() || from.Size() != to.Size() {
		return fmt.Errorf("%s (kind %s, %d bytes) does not share the storage layout of %s (kind %s, %d bytes)",
			from, from.Kind(), from.Size(), to, to.Kind(), to.Size())
	}

	return nil
}

// sameLayoutCast reinterprets v's bit pattern as the type to. The caller
// must have verified layout compatibility with checkSameLayout; no
// conversion of any kind happens here.
func sameLayoutCast(v reflect.Value, to reflect.Type) reflect.Value {
	p := reflect.New(v.Type())
	p.Elem().Set(v)

	return reflect.NewAt(to, p.UnsafePointer()).Elem()
}
