package builtin

import (
	"math/big"
	"reflect"
	"strconv"

	"github.com/govalues/decimal"

	"numops/registry"
)

// decimalOps services the fixed-point decimal type. Unlike the fixed-width
// integers there is no wraparound: out-of-range results and zero divisors
// surface as errors from the underlying decimal arithmetic, which pass
// through untranslated.
type decimalOps struct{}

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})

	decimalZero = decimal.MustParse("0")
	decimalOne  = decimal.MustParse("1")
	decimalHalf = decimal.MustParse("0.5")

	// 19 nines, the widest coefficient the representation holds
	decimalMax = decimal.MustParse("9999999999999999999")
	decimalMin = decimal.MustParse("-9999999999999999999")
)

func (decimalOps) Type() reflect.Type { return decimalType }

func (decimalOps) Zero() any { return decimalZero }
func (decimalOps) One() any  { return decimalOne }

func (decimalOps) MinValue() (any, error) { return decimalMin, nil }
func (decimalOps) MaxValue() (any, error) { return decimalMax, nil }

func (o decimalOps) Add(a, b any) (any, error) {
	x, y, err := operands[decimal.Decimal](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return passErr(x.Add(y))
}

func (o decimalOps) Sub(a, b any) (any, error) {
	x, y, err := operands[decimal.Decimal](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return passErr(x.Sub(y))
}

func (o decimalOps) Mul(a, b any) (any, error) {
	x, y, err := operands[decimal.Decimal](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return passErr(x.Mul(y))
}

func (o decimalOps) Div(a, b any) (any, error) {
	x, y, err := operands[decimal.Decimal](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	return passErr(x.Quo(y))
}

func (o decimalOps) Rem(a, b any) (any, error) {
	x, y, err := operands[decimal.Decimal](o.Type(), a, b)
	if err != nil {
		return nil, err
	}

	_, r, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (o decimalOps) Neg(v any) (any, error) {
	x, err := operand[decimal.Decimal](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return x.Neg(), nil
}

func (o decimalOps) Abs(v any) (any, error) {
	x, err := operand[decimal.Decimal](o.Type(), v)
	if err != nil {
		return nil, err
	}

	return x.Abs(), nil
}

func (o decimalOps) And(_, _ any) (any, error) {
	return nil, unsupported("bitwise and", o.Type())
}

func (o decimalOps) Or(_, _ any) (any, error) {
	return nil, unsupported("bitwise or", o.Type())
}

func (o decimalOps) Xor(_, _ any) (any, error) {
	return nil, unsupported("bitwise xor", o.Type())
}

func (o decimalOps) Not(any) (any, error) {
	return nil, unsupported("bitwise not", o.Type())
}

func (o decimalOps) ShiftLeft(any, uint) (any, error) {
	return nil, unsupported("shift", o.Type())
}

func (o decimalOps) ShiftRight(any, uint) (any, error) {
	return nil, unsupported("shift", o.Type())
}

func (o decimalOps) Compare(a, b any) (int, error) {
	x, y, err := operands[decimal.Decimal](o.Type(), a, b)
	if err != nil {
		return 0, err
	}

	return x.Cmp(y), nil
}

func (o decimalOps) Equal(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c == 0, err
}

func (o decimalOps) Less(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c < 0, err
}

func (o decimalOps) LessEq(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c <= 0, err
}

func (o decimalOps) Greater(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c > 0, err
}

func (o decimalOps) GreaterEq(a, b any) (bool, error) {
	c, err := o.Compare(a, b)

	return c >= 0, err
}

func (o decimalOps) Sign(v any) (int, error) {
	x, err := operand[decimal.Decimal](o.Type(), v)
	if err != nil {
		return 0, err
	}

	return x.Sign(), nil
}

func (o decimalOps) Round(v any, mode registry.RoundMode) (any, error) {
	x, err := operand[decimal.Decimal](o.Type(), v)
	if err != nil {
		return nil, err
	}

	switch mode {
	default:
		return x.Round(0), nil
	case registry.RoundHalfAway:
		// half away from zero is not native to the decimal type:
		// floor(x+0.5) for non-negative x, ceil(x-0.5) otherwise
		if x.Sign() >= 0 {
			y, err := x.Add(decimalHalf)
			if err != nil {
				return nil, err
			}
			return y.Floor(0), nil
		}

		y, err := x.Sub(decimalHalf)
		if err != nil {
			return nil, err
		}
		return y.Ceil(0), nil
	case registry.RoundFloor:
		return x.Floor(0), nil
	case registry.RoundCeil:
		return x.Ceil(0), nil
	case registry.RoundTrunc:
		return x.Trunc(0), nil
	}
}

func (o decimalOps) Convert(v any) (any, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case int:
		return passErr(decimal.New(int64(x), 0))
	case int8:
		return passErr(decimal.New(int64(x), 0))
	case int16:
		return passErr(decimal.New(int64(x), 0))
	case int32:
		return passErr(decimal.New(int64(x), 0))
	case int64:
		return passErr(decimal.New(x, 0))
	case uint:
		return passErr(decimal.Parse(strconv.FormatUint(uint64(x), 10)))
	case uint8:
		return passErr(decimal.New(int64(x), 0))
	case uint16:
		return passErr(decimal.New(int64(x), 0))
	case uint32:
		return passErr(decimal.New(int64(x), 0))
	case uint64:
		return passErr(decimal.Parse(strconv.FormatUint(x, 10)))
	case float32:
		return passErr(decimal.NewFromFloat64(float64(x)))
	case float64:
		return passErr(decimal.NewFromFloat64(x))
	case *big.Int:
		return passErr(decimal.Parse(x.String()))
	}

	f, err := convertFloat[float64](v)
	if err != nil {
		return nil, err
	}

	return passErr(decimal.NewFromFloat64(f))
}

func (o decimalOps) Parse(s string, _ registry.ParseOptions) (any, error) {
	return passErr(decimal.Parse(s))
}

func (o decimalOps) Format(v any, opts registry.FormatOptions) (string, error) {
	x, err := operand[decimal.Decimal](o.Type(), v)
	if err != nil {
		return "", err
	}

	return formatValue(x, opts)
}

func passErr(d decimal.Decimal, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return d, nil
}
