package builtin

import (
	"cmp"
	"math"
	"reflect"
	"strconv"

	"numops/registry"
	"numops/utils"
)

// floatOps services one IEEE floating-point type. Division by zero yields
// infinities and NaN exactly as the native operation does; equality and
// ordering are the native IEEE comparisons (NaN compares unequal to itself
// and unordered against everything).
type floatOps[T utils.Float] struct {
	max  T
	bits int
}

func newFloatOps[T utils.Float](max T) floatOps[T] {
	return floatOps[T]{max: max, bits: reflect.TypeOf((*T)(nil)).Elem().Bits()}
}

func (o floatOps[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (o floatOps[T]) Zero() any { return T(0) }
func (o floatOps[T]) One() any  { return T(1) }

func (o floatOps[T]) MinValue() (any, error) { return -o.max, nil }
func (o floatOps[T]) MaxValue() (any, error) { return o.max, nil }

func (o floatOps[T]) Add(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x + y, nil
}

func (o floatOps[T]) Sub(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x - y, nil
}

func (o floatOps[T]) Mul(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x * y, nil
}

func (o floatOps[T]) Div(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x / y, nil
}

func (o floatOps[T]) Rem(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return T(math.Mod(float64(x), float64(y))), nil
}

func (o floatOps[T]) Neg(v any) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return -x, nil
}

func (o floatOps[T]) Abs(v any) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return T(math.Abs(float64(x))), nil
}

func (o floatOps[T]) And(_, _ any) (any, error) {
	return nil, unsupported("bitwise and", o.Type())
}

func (o floatOps[T]) Or(_, _ any) (any, error) {
	return nil, unsupported("bitwise or", o.Type())
}

func (o floatOps[T]) Xor(_, _ any) (any, error) {
	return nil, unsupported("bitwise xor", o.Type())
}

func (o floatOps[T]) Not(any) (any, error) {
	return nil, unsupported("bitwise not", o.Type())
}

func (o floatOps[T]) ShiftLeft(any, uint) (any, error) {
	return nil, unsupported("shift", o.Type())
}

func (o floatOps[T]) ShiftRight(any, uint) (any, error) {
	return nil, unsupported("shift", o.Type())
}

func (o floatOps[T]) Compare(a, b any) (int, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return 0, err
	}

	// cmp orders NaN before every other value, keeping Compare total
	return cmp.Compare(x, y), nil
}

func (o floatOps[T]) Equal(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x == y, err
}

func (o floatOps[T]) Less(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x < y, err
}

func (o floatOps[T]) LessEq(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x <= y, err
}

func (o floatOps[T]) Greater(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x > y, err
}

func (o floatOps[T]) GreaterEq(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x >= y, err
}

func (o floatOps[T]) Sign(v any) (int, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return 0, err
	}

	switch {
	case x > 0:
		return 1, nil
	case x < 0:
		return -1, nil
	default:
		// zero and NaN
		return 0, nil
	}
}

func (o floatOps[T]) Round(v any, mode registry.RoundMode) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	f := float64(x)

	switch mode {
	case registry.RoundHalfEven:
		f = math.RoundToEven(f)
	case registry.RoundHalfAway:
		f = math.Round(f)
	case registry.RoundFloor:
		f = math.Floor(f)
	case registry.RoundCeil:
		f = math.Ceil(f)
	case registry.RoundTrunc:
		f = math.Trunc(f)
	}

	return T(f), nil
}

func (o floatOps[T]) Convert(v any) (any, error) {
	return convertFloat[T](v)
}

func (o floatOps[T]) Parse(s string, _ registry.ParseOptions) (any, error) {
	f, err := strconv.ParseFloat(s, o.bits)
	if err != nil {
		return nil, err
	}

	return T(f), nil
}

func (o floatOps[T]) Format(v any, opts registry.FormatOptions) (string, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return "", err
	}

	return formatValue(x, opts)
}
