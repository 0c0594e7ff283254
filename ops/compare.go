package ops

import (
	"cmp"

	"numops/registry"
)

// Compare returns -1, 0, or 1 ordering a against b. For floats a NaN
// compares before any other value, matching cmp.Compare.
func Compare[T any](a, b T) (int, error) {
	switch x := any(a).(type) {
	case int:
		return cmp.Compare(x, any(b).(int)), nil
	case int8:
		return cmp.Compare(x, any(b).(int8)), nil
	case int16:
		return cmp.Compare(x, any(b).(int16)), nil
	case int32:
		return cmp.Compare(x, any(b).(int32)), nil
	case int64:
		return cmp.Compare(x, any(b).(int64)), nil
	case uint:
		return cmp.Compare(x, any(b).(uint)), nil
	case uint8:
		return cmp.Compare(x, any(b).(uint8)), nil
	case uint16:
		return cmp.Compare(x, any(b).(uint16)), nil
	case uint32:
		return cmp.Compare(x, any(b).(uint32)), nil
	case uint64:
		return cmp.Compare(x, any(b).(uint64)), nil
	case float32:
		return cmp.Compare(x, any(b).(float32)), nil
	case float64:
		return cmp.Compare(x, any(b).(float64)), nil
	}

	return applyCmp(a, b)
}

// Equal reports whether a == b under T's native equality. NaN is not equal
// to anything, itself included.
func Equal[T any](a, b T) (bool, error) {
	switch x := any(a).(type) {
	case int:
		return x == any(b).(int), nil
	case int8:
		return x == any(b).(int8), nil
	case int16:
		return x == any(b).(int16), nil
	case int32:
		return x == any(b).(int32), nil
	case int64:
		return x == any(b).(int64), nil
	case uint:
		return x == any(b).(uint), nil
	case uint8:
		return x == any(b).(uint8), nil
	case uint16:
		return x == any(b).(uint16), nil
	case uint32:
		return x == any(b).(uint32), nil
	case uint64:
		return x == any(b).(uint64), nil
	case float32:
		return x == any(b).(float32), nil
	case float64:
		return x == any(b).(float64), nil
	}

	return applyPred(a, b, registry.Operations.Equal)
}

// Less reports whether a < b.
func Less[T any](a, b T) (bool, error) {
	switch x := any(a).(type) {
	case int:
		return x < any(b).(int), nil
	case int8:
		return x < any(b).(int8), nil
	case int16:
		return x < any(b).(int16), nil
	case int32:
		return x < any(b).(int32), nil
	case int64:
		return x < any(b).(int64), nil
	case uint:
		return x < any(b).(uint), nil
	case uint8:
		return x < any(b).(uint8), nil
	case uint16:
		return x < any(b).(uint16), nil
	case uint32:
		return x < any(b).(uint32), nil
	case uint64:
		return x < any(b).(uint64), nil
	case float32:
		return x < any(b).(float32), nil
	case float64:
		return x < any(b).(float64), nil
	}

	return applyPred(a, b, registry.Operations.Less)
}

// LessEq reports whether a <= b.
func LessEq[T any](a, b T) (bool, error) {
	switch x := any(a).(type) {
	case int:
		return x <= any(b).(int), nil
	case int8:
		return x <= any(b).(int8), nil
	case int16:
		return x <= any(b).(int16), nil
	case int32:
		return x <= any(b).(int32), nil
	case int64:
		return x <= any(b).(int64), nil
	case uint:
		return x <= any(b).(uint), nil
	case uint8:
		return x <= any(b).(uint8), nil
	case uint16:
		return x <= any(b).(uint16), nil
	case uint32:
		return x <= any(b).(uint32), nil
	case uint64:
		return x <= any(b).(uint64), nil
	case float32:
		return x <= any(b).(float32), nil
	case float64:
		return x <= any(b).(float64), nil
	}

	return applyPred(a, b, registry.Operations.LessEq)
}

// Greater reports whether a > b.
func Greater[T any](a, b T) (bool, error) {
	switch x := any(a).(type) {
	case int:
		return x > any(b).(int), nil
	case int8:
		return x > any(b).(int8), nil
	case int16:
		return x > any(b).(int16), nil
	case int32:
		return x > any(b).(int32), nil
	case int64:
		return x > any(b).(int64), nil
	case uint:
		return x > any(b).(uint), nil
	case uint8:
		return x > any(b).(uint8), nil
	case uint16:
		return x > any(b).(uint16), nil
	case uint32:
		return x > any(b).(uint32), nil
	case uint64:
		return x > any(b).(uint64), nil
	case float32:
		return x > any(b).(float32), nil
	case float64:
		return x > any(b).(float64), nil
	}

	return applyPred(a, b, registry.Operations.Greater)
}

// GreaterEq reports whether a >= b.
func GreaterEq[T any](a, b T) (bool, error) {
	switch x := any(a).(type) {
	case int:
		return x >= any(b).(int), nil
	case int8:
		return x >= any(b).(int8), nil
	case int16:
		return x >= any(b).(int16), nil
	case int32:
		return x >= any(b).(int32), nil
	case int64:
		return x >= any(b).(int64), nil
	case uint:
		return x >= any(b).(uint), nil
	case uint8:
		return x >= any(b).(uint8), nil
	case uint16:
		return x >= any(b).(uint16), nil
	case uint32:
		return x >= any(b).(uint32), nil
	case uint64:
		return x >= any(b).(uint64), nil
	case float32:
		return x >= any(b).(float32), nil
	case float64:
		return x >= any(b).(float64), nil
	}

	return applyPred(a, b, registry.Operations.GreaterEq)
}

// Sign returns -1, 0, or 1 for the sign of v. Composite types may report
// additional out-of-band values, such as nullable.SignNone for absent.
func Sign[T any](v T) (int, error) {
	switch x := any(v).(type) {
	case int:
		return cmp.Compare(x, 0), nil
	case int8:
		return cmp.Compare(x, 0), nil
	case int16:
		return cmp.Compare(x, 0), nil
	case int32:
		return cmp.Compare(x, 0), nil
	case int64:
		return cmp.Compare(x, 0), nil
	case uint:
		return cmp.Compare(x, 0), nil
	case uint8:
		return cmp.Compare(x, 0), nil
	case uint16:
		return cmp.Compare(x, 0), nil
	case uint32:
		return cmp.Compare(x, 0), nil
	case uint64:
		return cmp.Compare(x, 0), nil
	case float32:
		return cmp.Compare(x, 0), nil
	case float64:
		return cmp.Compare(x, 0), nil
	}

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return 0, err
	}

	return impl.Sign(v)
}
