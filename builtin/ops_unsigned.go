package builtin

import (
	"cmp"
	"reflect"
	"strconv"

	"numops/registry"
	"numops/utils"
)

// unsignedOps services one unsigned fixed-width integer type. Negation is
// the one operation rejected here: silently computing the two's complement
// of an unsigned operand is a wrong numeric result, not a convenience.
type unsignedOps[T utils.Unsigned] struct {
	bits int
}

func newUnsignedOps[T utils.Unsigned]() unsignedOps[T] {
	return unsignedOps[T]{bits: reflect.TypeOf((*T)(nil)).Elem().Bits()}
}

func (o unsignedOps[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (o unsignedOps[T]) Zero() any { return T(0) }
func (o unsignedOps[T]) One() any  { return T(1) }

func (o unsignedOps[T]) MinValue() (any, error) { return T(0), nil }
func (o unsignedOps[T]) MaxValue() (any, error) { return ^T(0), nil }

func (o unsignedOps[T]) Add(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x + y, nil
}

func (o unsignedOps[T]) Sub(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x - y, nil
}

func (o unsignedOps[T]) Mul(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x * y, nil
}

func (o unsignedOps[T]) Div(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x / y, nil
}

func (o unsignedOps[T]) Rem(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x % y, nil
}

func (o unsignedOps[T]) Neg(any) (any, error) {
	return nil, unsupported("negation", o.Type())
}

func (o unsignedOps[T]) Abs(v any) (any, error) {
	return operand[T](o.Type(), v)
}

func (o unsignedOps[T]) And(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x & y, nil
}

func (o unsignedOps[T]) Or(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x | y, nil
}

func (o unsignedOps[T]) Xor(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x ^ y, nil
}

func (o unsignedOps[T]) Not(v any) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return ^x, nil
}

func (o unsignedOps[T]) ShiftLeft(v any, n uint) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return x << n, nil
}

func (o unsignedOps[T]) ShiftRight(v any, n uint) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return x >> n, nil
}

func (o unsignedOps[T]) Compare(a, b any) (int, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return 0, err
	}

	return cmp.Compare(x, y), nil
}

func (o unsignedOps[T]) Equal(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x == y, err
}

func (o unsignedOps[T]) Less(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x < y, err
}

func (o unsignedOps[T]) LessEq(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x <= y, err
}

func (o unsignedOps[T]) Greater(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x > y, err
}

func (o unsignedOps[T]) GreaterEq(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x >= y, err
}

func (o unsignedOps[T]) Sign(v any) (int, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return 0, err
	}

	if x > 0 {
		return 1, nil
	}

	return 0, nil
}

func (o unsignedOps[T]) Round(v any, _ registry.RoundMode) (any, error) {
	return operand[T](o.Type(), v)
}

func (o unsignedOps[T]) Convert(v any) (any, error) {
	return convertInt[T](v)
}

func (o unsignedOps[T]) Parse(s string, opts registry.ParseOptions) (any, error) {
	n, err := strconv.ParseUint(s, parseBase(opts), o.bits)
	if err != nil {
		return nil, err
	}

	return T(n), nil
}

func (o unsignedOps[T]) Format(v any, opts registry.FormatOptions) (string, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return "", err
	}

	return formatValue(x, opts)
}
