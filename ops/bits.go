package ops

import "numops/registry"

// And returns a & b. Bitwise operations are defined for integer kinds only.
func And[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x & any(b).(int)).(T), nil
	case int8:
		return any(x & any(b).(int8)).(T), nil
	case int16:
		return any(x & any(b).(int16)).(T), nil
	case int32:
		return any(x & any(b).(int32)).(T), nil
	case int64:
		return any(x & any(b).(int64)).(T), nil
	case uint:
		return any(x & any(b).(uint)).(T), nil
	case uint8:
		return any(x & any(b).(uint8)).(T), nil
	case uint16:
		return any(x & any(b).(uint16)).(T), nil
	case uint32:
		return any(x & any(b).(uint32)).(T), nil
	case uint64:
		return any(x & any(b).(uint64)).(T), nil
	}

	return apply2(a, b, registry.Operations.And)
}

// Or returns a | b.
func Or[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x | any(b).(int)).(T), nil
	case int8:
		return any(x | any(b).(int8)).(T), nil
	case int16:
		return any(x | any(b).(int16)).(T), nil
	case int32:
		return any(x | any(b).(int32)).(T), nil
	case int64:
		return any(x | any(b).(int64)).(T), nil
	case uint:
		return any(x | any(b).(uint)).(T), nil
	case uint8:
		return any(x | any(b).(uint8)).(T), nil
	case uint16:
		return any(x | any(b).(uint16)).(T), nil
	case uint32:
		return any(x | any(b).(uint32)).(T), nil
	case uint64:
		return any(x | any(b).(uint64)).(T), nil
	}

	return apply2(a, b, registry.Operations.Or)
}

// Xor returns a ^ b.
func Xor[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x ^ any(b).(int)).(T), nil
	case int8:
		return any(x ^ any(b).(int8)).(T), nil
	case int16:
		return any(x ^ any(b).(int16)).(T), nil
	case int32:
		return any(x ^ any(b).(int32)).(T), nil
	case int64:
		return any(x ^ any(b).(int64)).(T), nil
	case uint:
		return any(x ^ any(b).(uint)).(T), nil
	case uint8:
		return any(x ^ any(b).(uint8)).(T), nil
	case uint16:
		return any(x ^ any(b).(uint16)).(T), nil
	case uint32:
		return any(x ^ any(b).(uint32)).(T), nil
	case uint64:
		return any(x ^ any(b).(uint64)).(T), nil
	}

	return apply2(a, b, registry.Operations.Xor)
}

// Not returns the bitwise complement of v.
func Not[T any](v T) (T, error) {
	switch x := any(v).(type) {
	case int:
		return any(^x).(T), nil
	case int8:
		return any(^x).(T), nil
	case int16:
		return any(^x).(T), nil
	case int32:
		return any(^x).(T), nil
	case int64:
		return any(^x).(T), nil
	case uint:
		return any(^x).(T), nil
	case uint8:
		return any(^x).(T), nil
	case uint16:
		return any(^x).(T), nil
	case uint32:
		return any(^x).(T), nil
	case uint64:
		return any(^x).(T), nil
	}

	return apply1(v, registry.Operations.Not)
}

// ShiftLeft returns v << n. Shifting past the width of T yields zero, the
// native semantics.
func ShiftLeft[T any](v T, n uint) (T, error) {
	switch x := any(v).(type) {
	case int:
		return any(x << n).(T), nil
	case int8:
		return any(x << n).(T), nil
	case int16:
		return any(x << n).(T), nil
	case int32:
		return any(x << n).(T), nil
	case int64:
		return any(x << n).(T), nil
	case uint:
		return any(x << n).(T), nil
	case uint8:
		return any(x << n).(T), nil
	case uint16:
		return any(x << n).(T), nil
	case uint32:
		return any(x << n).(T), nil
	case uint64:
		return any(x << n).(T), nil
	}

	return applyShift(v, n, registry.Operations.ShiftLeft)
}

// ShiftRight returns v >> n. Right shifts of signed values are arithmetic.
func ShiftRight[T any](v T, n uint) (T, error) {
	switch x := any(v).(type) {
	case int:
		return any(x >> n).(T), nil
	case int8:
		return any(x >> n).(T), nil
	case int16:
		return any(x >> n).(T), nil
	case int32:
		return any(x >> n).(T), nil
	case int64:
		return any(x >> n).(T), nil
	case uint:
		return any(x >> n).(T), nil
	case uint8:
		return any(x >> n).(T), nil
	case uint16:
		return any(x >> n).(T), nil
	case uint32:
		return any(x >> n).(T), nil
	case uint64:
		return any(x >> n).(T), nil
	}

	return applyShift(v, n, registry.Operations.ShiftRight)
}
