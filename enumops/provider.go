package enumops

import (
	"reflect"

	"numops/primitive"
	"numops/registry"
)

// NewProvider resolves named types whose storage representation is one of
// the built-in integer kinds. The underlying type's operations are resolved
// through r, so the provider composes with whatever r already knows.
func NewProvider(r *registry.Registry) registry.Provider {
	return registry.ProviderFunc(func(t reflect.Type) (registry.Operations, bool) {
		kind := primitive.UnderlyingKind(t)
		if kind == 0 {
			return nil, false
		}

		under, err := r.Resolve(underlyingType(kind))
		if err != nil {
			return nil, false
		}

		// a failed layout check means the type is not servable, not an error
		impl, err := NewOperations(t, under)
		if err != nil {
			return nil, false
		}

		return impl, true
	})
}

func underlyingType(kind primitive.KindEnum) reflect.Type {
	switch kind {
	default:
		return nil
	case primitive.KindInt:
		return reflect.TypeOf(int(0))
	case primitive.KindInt8:
		return reflect.TypeOf(int8(0))
	case primitive.KindInt16:
		return reflect.TypeOf(int16(0))
	case primitive.KindInt32:
		return reflect.TypeOf(int32(0))
	case primitive.KindInt64:
		return reflect.TypeOf(int64(0))
	case primitive.KindUint:
		return reflect.TypeOf(uint(0))
	case primitive.KindUint8:
		return reflect.TypeOf(uint8(0))
	case primitive.KindUint16:
		return reflect.TypeOf(uint16(0))
	case primitive.KindUint32:
		return reflect.TypeOf(uint32(0))
	case primitive.KindUint64:
		return reflect.TypeOf(uint64(0))
	}
}
