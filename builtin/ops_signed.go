package builtin

import (
	"cmp"
	"reflect"
	"strconv"

	"numops/registry"
	"numops/utils"
)

// signedOps services one signed fixed-width integer type. Every operation is
// the native machine operation, wraparound and division-by-zero trap
// included.
type signedOps[T utils.Signed] struct {
	min, max T
	bits     int
}

func newSignedOps[T utils.Signed](min, max T) signedOps[T] {
	return signedOps[T]{min: min, max: max, bits: reflect.TypeOf((*T)(nil)).Elem().Bits()}
}

func (o signedOps[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (o signedOps[T]) Zero() any { return T(0) }
func (o signedOps[T]) One() any  { return T(1) }

func (o signedOps[T]) MinValue() (any, error) { return o.min, nil }
func (o signedOps[T]) MaxValue() (any, error) { return o.max, nil }

func (o signedOps[T]) Add(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x + y, nil
}

func (o signedOps[T]) Sub(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x - y, nil
}

func (o signedOps[T]) Mul(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x * y, nil
}

func (o signedOps[T]) Div(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x / y, nil
}

func (o signedOps[T]) Rem(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x % y, nil
}

func (o signedOps[T]) Neg(v any) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return -x, nil
}

func (o signedOps[T]) Abs(v any) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	if x < 0 {
		// the minimum value wraps to itself, matching native negation
		return -x, nil
	}

	return x, nil
}

func (o signedOps[T]) And(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x & y, nil
}

func (o signedOps[T]) Or(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x | y, nil
}

func (o signedOps[T]) Xor(a, b any) (any, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return x ^ y, nil
}

func (o signedOps[T]) Not(v any) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return ^x, nil
}

func (o signedOps[T]) ShiftLeft(v any, n uint) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return x << n, nil
}

func (o signedOps[T]) ShiftRight(v any, n uint) (any, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return x >> n, nil
}

func (o signedOps[T]) Compare(a, b any) (int, error) {
	x, y, err := operands[T](o.Type(), a, b)
	if err != nil {
		return 0, err
	}

	return cmp.Compare(x, y), nil
}

func (o signedOps[T]) Equal(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x == y, err
}

func (o signedOps[T]) Less(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x < y, err
}

func (o signedOps[T]) LessEq(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x <= y, err
}

func (o signedOps[T]) Greater(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x > y, err
}

func (o signedOps[T]) GreaterEq(a, b any) (bool, error) {
	x, y, err := operands[T](o.Type(), a, b)

	return x >= y, err
}

func (o signedOps[T]) Sign(v any) (int, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return 0, err
	}

	return cmp.Compare(x, 0), nil
}

func (o signedOps[T]) Round(v any, _ registry.RoundMode) (any, error) {
	// integers are already whole under every mode
	return operand[T](o.Type(), v)
}

func (o signedOps[T]) Convert(v any) (any, error) {
	return convertInt[T](v)
}

func (o signedOps[T]) Parse(s string, opts registry.ParseOptions) (any, error) {
	n, err := strconv.ParseInt(s, parseBase(opts), o.bits)
	if err != nil {
		return nil, err
	}

	return T(n), nil
}

func (o signedOps[T]) Format(v any, opts registry.FormatOptions) (string, error) {
	x, err := operand[T](o.Type(), v)
	if err != nil {
		return "", err
	}

	return formatValue(x, opts)
}
