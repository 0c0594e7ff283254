package nullable

import (
	"reflect"
	"strings"

	"numops/registry"
)

var (
	nullablePkgPath = reflect.TypeOf(Nullable[int]{}).PkgPath()
	nullablePrefix  = "Nullable["
)

// elemTypeOf returns the wrapped type when t is a Nullable instantiation.
func elemTypeOf(t reflect.Type) (reflect.Type, bool) {
	if t == nil || t.Kind() != reflect.Struct || t.NumField() != 2 {
		return nil, false
	}

	if t.PkgPath() != nullablePkgPath || !strings.HasPrefix(t.Name(), nullablePrefix) {
		return nil, false
	}

	val, valid := t.Field(0), t.Field(1)
	if val.Name != "Val" || valid.Name != "Valid" || valid.Type.Kind() != reflect.Bool {
		return nil, false
	}

	return val.Type, true
}

// NewProvider resolves Nullable[X] for every X resolvable through r,
// including X handled by providers later in r's chain (composite types
// chain: Nullable of an enum resolves the enum first, then lifts it).
func NewProvider(r *registry.Registry) registry.Provider {
	return registry.ProviderFunc(func(t reflect.Type) (registry.Operations, bool) {
		elemType, ok := elemTypeOf(t)
		if !ok {
			return nil, false
		}

		elem, err := r.Resolve(elemType)
		if err != nil {
			return nil, false
		}

		return newNullableOps(t, elem), true
	})
}

// Unwrap inspects a boxed value and, when it is a Nullable of any element
// type, returns the carried payload. The payload is meaningful only when
// valid is true.
func Unwrap(v any) (payload any, valid, ok bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false, false
	}

	if _, isNullable := elemTypeOf(rv.Type()); !isNullable {
		return nil, false, false
	}

	if !rv.Field(1).Bool() {
		return nil, false, true
	}

	return rv.Field(0).Interface(), true, true
}
