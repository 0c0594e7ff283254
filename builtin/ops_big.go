package builtin

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/govalues/decimal"

	"numops/registry"
)

// bigOps services *big.Int, the arbitrary-precision integer type. Operands
// are never mutated; every result is a fresh value. An unbounded type has no
// min/max, so the bound queries are unsupported rather than sentinel-valued.
type bigOps struct{}

var bigIntType = reflect.TypeOf((*big.Int)(nil))

func (bigOps) Type() reflect.Type { return bigIntType }

func (bigOps) Zero() any { return new(big.Int) }
func (bigOps) One() any  { return big.NewInt(1) }

func (o bigOps) MinValue() (any, error) {
	return nil, unsupported("min value of an unbounded type", o.Type())
}

func (o bigOps) MaxValue() (any, error) {
	return nil, unsupported("max value of an unbounded type", o.Type())
}

func (o bigOps) big(v any) (*big.Int, error) {
	x, ok := v.(*big.Int)
	if !ok || x == nil {
		return nil, fmt.Errorf("operand must be a non-nil *big.Int, got %T", v)
	}

	return x, nil
}

func (o bigOps) bigs(a, b any) (*big.Int, *big.Int, error) {
	x, err := o.big(a)
	if err != nil {
		return nil, nil, err
	}

	y, err := o.big(b)
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

func (o bigOps) Add(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Add(x, y), nil
}

func (o bigOps) Sub(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Sub(x, y), nil
}

func (o bigOps) Mul(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Mul(x, y), nil
}

func (o bigOps) Div(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	// truncated division, same semantics as the fixed-width types;
	// a zero divisor panics exactly as the native operation does
	return new(big.Int).Quo(x, y), nil
}

func (o bigOps) Rem(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Rem(x, y), nil
}

func (o bigOps) Neg(v any) (any, error) {
	x, err := o.big(v)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Neg(x), nil
}

func (o bigOps) Abs(v any) (any, error) {
	x, err := o.big(v)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Abs(x), nil
}

func (o bigOps) And(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	return new(big.Int).And(x, y), nil
}

func (o bigOps) Or(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Or(x, y), nil
}

func (o bigOps) Xor(a, b any) (any, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Xor(x, y), nil
}

func (o bigOps) Not(v any) (any, error) {
	x, err := o.big(v)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Not(x), nil
}

func (o bigOps) ShiftLeft(v any, n uint) (any, error) {
	x, err := o.big(v)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Lsh(x, n), nil
}

func (o bigOps) ShiftRight(v any, n uint) (any, error) {
	x, err := o.big(v)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Rsh(x, n), nil
}

func (o bigOps) Compare(a, b any) (int, error) {
	x, y, err := o.bigs(a, b)
	if err != nil {
		return 0, err
	}

	return x.Cmp(y), nil
}

func (o bigOps) Equal(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c == 0, err
}

func (o bigOps) Less(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c < 0, err
}

func (o bigOps) LessEq(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c <= 0, err
}

func (o bigOps) Greater(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c > 0, err
}

func (o bigOps) GreaterEq(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c >= 0, err
}

func (o bigOps) Sign(v any) (int, error) {
	x, err := o.big(v)
	if err != nil {
		return 0, err
	}

	return x.Sign(), nil
}

func (o bigOps) Round(v any, _ registry.RoundMode) (any, error) {
	x, err := o.big(v)
	if err != nil {
		return nil, err
	}

	return x, nil
}

func (o bigOps) Convert(v any) (any, error) {
	switch x := v.(type) {
	case *big.Int:
		return x, nil
	case int:
		return big.NewInt(int64(x)), nil
	case int8:
		return big.NewInt(int64(x)), nil
	case int16:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint8:
		return big.NewInt(int64(x)), nil
	case uint16:
		return big.NewInt(int64(x)), nil
	case uint32:
		return big.NewInt(int64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case float32:
		i, _ := big.NewFloat(float64(x)).Int(nil)
		return i, nil
	case float64:
		i, _ := big.NewFloat(x).Int(nil)
		return i, nil
	case decimal.Decimal:
		i, ok := new(big.Int).SetString(x.Trunc(0).String(), 10)
		if !ok {
			return nil, fmt.Errorf("cannot convert decimal %s to *big.Int", x)
		}
		return i, nil
	}

	n, err := convertInt[int64](v)
	if err != nil {
		return nil, err
	}

	return big.NewInt(n), nil
}

func (o bigOps) Parse(s string, opts registry.ParseOptions) (any, error) {
	base := parseBase(opts)

	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("parsing %q: invalid big integer in base %d", s, base)
	}

	return x, nil
}

func (o bigOps) Format(v any, opts registry.FormatOptions) (string, error) {
	x, err := o.big(v)
	if err != nil {
		return "", err
	}

	return formatValue(x, opts)
}
