package builtin

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/govalues/decimal"

	"numops/utils"
)

func operand[T any](t reflect.Type, v any) (T, error) {
	x, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("operand must be %s, got %T", t, v)
	}

	return x, nil
}

func operands[T any](t reflect.Type, a, b any) (T, T, error) {
	x, err := operand[T](t, a)
	if err != nil {
		var zero T
		return zero, zero, err
	}

	y, err := operand[T](t, b)
	if err != nil {
		var zero T
		return zero, zero, err
	}

	return x, y, nil
}

var mask64 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))

// truncBig reduces an arbitrary-precision integer to its low 64 bits in
// two's complement, matching what a native narrowing conversion does.
// big.Int bitwise ops already use two's complement semantics for negatives.
func truncBig(x *big.Int) uint64 {
	return new(big.Int).And(x, mask64).Uint64()
}

// convertInt produces T from any built-in numeric value with native
// narrowing semantics: fixed-width sources wrap, floats truncate toward
// zero, arbitrary-precision sources keep their low 64 bits.
func convertInt[T utils.Integer](v any) (T, error) {
	switch x := v.(type) {
	case int:
		return T(x), nil
	case int8:
		return T(x), nil
	case int16:
		return T(x), nil
	case int32:
		return T(x), nil
	case int64:
		return T(x), nil
	case uint:
		return T(x), nil
	case uint8:
		return T(x), nil
	case uint16:
		return T(x), nil
	case uint32:
		return T(x), nil
	case uint64:
		return T(x), nil
	case float32:
		return T(x), nil
	case float64:
		return T(x), nil
	case *big.Int:
		return T(int64(truncBig(x))), nil
	case decimal.Decimal:
		f, _ := x.Float64()
		return T(int64(f)), nil
	}

	return convertReflect[T](v)
}

// convertFloat produces T from any built-in numeric value with native
// conversion semantics.
func convertFloat[T utils.Float](v any) (T, error) {
	switch x := v.(type) {
	case int:
		return T(x), nil
	case int8:
		return T(x), nil
	case int16:
		return T(x), nil
	case int32:
		return T(x), nil
	case int64:
		return T(x), nil
	case uint:
		return T(x), nil
	case uint8:
		return T(x), nil
	case uint16:
		return T(x), nil
	case uint32:
		return T(x), nil
	case uint64:
		return T(x), nil
	case float32:
		return T(x), nil
	case float64:
		return T(x), nil
	case *big.Int:
		f, _ := x.Float64()
		return T(f), nil
	case decimal.Decimal:
		f, _ := x.Float64()
		return T(f), nil
	}

	return convertReflect[T](v)
}

// convertReflect handles named types backed by a numeric kind, e.g. enums
// arriving at Convert without going through their adapter.
func convertReflect[T utils.Number](v any) (T, error) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return T(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return T(rv.Float()), nil
	}

	var zero T

	return zero, fmt.Errorf("cannot convert %T to %s", v, reflect.TypeOf((*T)(nil)).Elem())
}
