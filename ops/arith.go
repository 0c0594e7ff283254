package ops

import (
	"math"

	"numops/registry"
)

// Add returns a + b with the native semantics of T. Fixed-width integers
// wrap around on overflow.
func Add[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x + any(b).(int)).(T), nil
	case int8:
		return any(x + any(b).(int8)).(T), nil
	case int16:
		return any(x + any(b).(int16)).(T), nil
	case int32:
		return any(x + any(b).(int32)).(T), nil
	case int64:
		return any(x + any(b).(int64)).(T), nil
	case uint:
		return any(x + any(b).(uint)).(T), nil
	case uint8:
		return any(x + any(b).(uint8)).(T), nil
	case uint16:
		return any(x + any(b).(uint16)).(T), nil
	case uint32:
		return any(x + any(b).(uint32)).(T), nil
	case uint64:
		return any(x + any(b).(uint64)).(T), nil
	case float32:
		return any(x + any(b).(float32)).(T), nil
	case float64:
		return any(x + any(b).(float64)).(T), nil
	}

	return apply2(a, b, registry.Operations.Add)
}

// Sub returns a - b with the native semantics of T.
func Sub[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x - any(b).(int)).(T), nil
	case int8:
		return any(x - any(b).(int8)).(T), nil
	case int16:
		return any(x - any(b).(int16)).(T), nil
	case int32:
		return any(x - any(b).(int32)).(T), nil
	case int64:
		return any(x - any(b).(int64)).(T), nil
	case uint:
		return any(x - any(b).(uint)).(T), nil
	case uint8:
		return any(x - any(b).(uint8)).(T), nil
	case uint16:
		return any(x - any(b).(uint16)).(T), nil
	case uint32:
		return any(x - any(b).(uint32)).(T), nil
	case uint64:
		return any(x - any(b).(uint64)).(T), nil
	case float32:
		return any(x - any(b).(float32)).(T), nil
	case float64:
		return any(x - any(b).(float64)).(T), nil
	}

	return apply2(a, b, registry.Operations.Sub)
}

// Mul returns a * b with the native semantics of T.
func Mul[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x * any(b).(int)).(T), nil
	case int8:
		return any(x * any(b).(int8)).(T), nil
	case int16:
		return any(x * any(b).(int16)).(T), nil
	case int32:
		return any(x * any(b).(int32)).(T), nil
	case int64:
		return any(x * any(b).(int64)).(T), nil
	case uint:
		return any(x * any(b).(uint)).(T), nil
	case uint8:
		return any(x * any(b).(uint8)).(T), nil
	case uint16:
		return any(x * any(b).(uint16)).(T), nil
	case uint32:
		return any(x * any(b).(uint32)).(T), nil
	case uint64:
		return any(x * any(b).(uint64)).(T), nil
	case float32:
		return any(x * any(b).(float32)).(T), nil
	case float64:
		return any(x * any(b).(float64)).(T), nil
	}

	return apply2(a, b, registry.Operations.Mul)
}

// Div returns a / b with the native semantics of T: integer division panics
// on a zero divisor, float division yields Inf or NaN.
func Div[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x / any(b).(int)).(T), nil
	case int8:
		return any(x / any(b).(int8)).(T), nil
	case int16:
		return any(x / any(b).(int16)).(T), nil
	case int32:
		return any(x / any(b).(int32)).(T), nil
	case int64:
		return any(x / any(b).(int64)).(T), nil
	case uint:
		return any(x / any(b).(uint)).(T), nil
	case uint8:
		return any(x / any(b).(uint8)).(T), nil
	case uint16:
		return any(x / any(b).(uint16)).(T), nil
	case uint32:
		return any(x / any(b).(uint32)).(T), nil
	case uint64:
		return any(x / any(b).(uint64)).(T), nil
	case float32:
		return any(x / any(b).(float32)).(T), nil
	case float64:
		return any(x / any(b).(float64)).(T), nil
	}

	return apply2(a, b, registry.Operations.Div)
}

// Rem returns the remainder of a / b. Floats use math.Mod semantics.
func Rem[T any](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int:
		return any(x % any(b).(int)).(T), nil
	case int8:
		return any(x % any(b).(int8)).(T), nil
	case int16:
		return any(x % any(b).(int16)).(T), nil
	case int32:
		return any(x % any(b).(int32)).(T), nil
	case int64:
		return any(x % any(b).(int64)).(T), nil
	case uint:
		return any(x % any(b).(uint)).(T), nil
	case uint8:
		return any(x % any(b).(uint8)).(T), nil
	case uint16:
		return any(x % any(b).(uint16)).(T), nil
	case uint32:
		return any(x % any(b).(uint32)).(T), nil
	case uint64:
		return any(x % any(b).(uint64)).(T), nil
	case float32:
		return any(float32(math.Mod(float64(x), float64(any(b).(float32))))).(T), nil
	case float64:
		return any(math.Mod(x, any(b).(float64))).(T), nil
	}

	return apply2(a, b, registry.Operations.Rem)
}

// Neg returns -v. Unsigned types do not support negation.
func Neg[T any](v T) (T, error) {
	switch x := any(v).(type) {
	case int:
		return any(-x).(T), nil
	case int8:
		return any(-x).(T), nil
	case int16:
		return any(-x).(T), nil
	case int32:
		return any(-x).(T), nil
	case int64:
		return any(-x).(T), nil
	case float32:
		return any(-x).(T), nil
	case float64:
		return any(-x).(T), nil
	}

	return apply1(v, registry.Operations.Neg)
}

// Abs returns the absolute value of v. The minimum value of a signed
// fixed-width integer negates to itself.
func Abs[T any](v T) (T, error) {
	switch x := any(v).(type) {
	case int:
		if x < 0 {
			x = -x
		}

		return any(x).(T), nil
	case int8:
		if x < 0 {
			x = -x
		}

		return any(x).(T), nil
	case int16:
		if x < 0 {
			x = -x
		}

		return any(x).(T), nil
	case int32:
		if x < 0 {
			x = -x
		}

		return any(x).(T), nil
	case int64:
		if x < 0 {
			x = -x
		}

		return any(x).(T), nil
	case uint, uint8, uint16, uint32, uint64:
		return v, nil
	case float32:
		return any(float32(math.Abs(float64(x)))).(T), nil
	case float64:
		return any(math.Abs(x)).(T), nil
	}

	return apply1(v, registry.Operations.Abs)
}
