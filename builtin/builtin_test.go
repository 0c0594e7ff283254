package builtin_test

import (
	"math"
	"math/big"
	"reflect"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"numops/builtin"
	"numops/registry"
)

func opsFor(t *testing.T, sample any) registry.Operations {
	t.Helper()

	impl, ok := builtin.For(reflect.TypeOf(sample))
	require.True(t, ok, "no builtin implementation for %T", sample)

	return impl
}

func TestSignedWraparound(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, int8(0))

	sum, err := impl.Add(int8(127), int8(1))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), sum)

	diff, err := impl.Sub(int8(math.MinInt8), int8(1))
	require.NoError(t, err)
	assert.Equal(t, int8(127), diff)

	prod, err := impl.Mul(int8(64), int8(2))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), prod)

	// the minimum value negates to itself
	neg, err := impl.Neg(int8(math.MinInt8))
	require.NoError(t, err)
	assert.Equal(t, int8(math.MinInt8), neg)
}

func TestUnsignedSemantics(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, uint8(0))

	diff, err := impl.Sub(uint8(0), uint8(1))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), diff)

	_, err = impl.Neg(uint8(1))
	require.ErrorIs(t, err, registry.ErrUnsupportedOperation)

	abs, err := impl.Abs(uint8(7))
	require.NoError(t, err)
	assert.Equal(t, uint8(7), abs)

	maxVal, err := impl.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), maxVal)

	sign, err := impl.Sign(uint8(0))
	require.NoError(t, err)
	assert.Equal(t, 0, sign)

	sign, err = impl.Sign(uint8(3))
	require.NoError(t, err)
	assert.Equal(t, 1, sign)
}

func TestFloatSpecialValues(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, float64(0))

	quot, err := impl.Div(float64(1), float64(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(quot.(float64), 1))

	eq, err := impl.Equal(math.NaN(), math.NaN())
	require.NoError(t, err)
	assert.False(t, eq)

	// cmp ordering puts NaN before everything
	cmpRes, err := impl.Compare(math.NaN(), float64(1))
	require.NoError(t, err)
	assert.Equal(t, -1, cmpRes)

	rem, err := impl.Rem(5.5, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, rem, 1e-12)

	_, err = impl.And(float64(1), float64(2))
	require.ErrorIs(t, err, registry.ErrUnsupportedOperation)
}

func TestFloatRoundModes(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, float64(0))

	tests := []struct {
		name string
		v    float64
		mode registry.RoundMode
		want float64
	}{
		{"half even down", 2.5, registry.RoundHalfEven, 2},
		{"half even up", 3.5, registry.RoundHalfEven, 4},
		{"half even negative", -2.5, registry.RoundHalfEven, -2},
		{"half away", 2.5, registry.RoundHalfAway, 3},
		{"half away negative", -2.5, registry.RoundHalfAway, -3},
		{"floor", 2.3, registry.RoundFloor, 2},
		{"floor negative", -2.3, registry.RoundFloor, -3},
		{"ceil", 2.3, registry.RoundCeil, 3},
		{"trunc negative", -2.7, registry.RoundTrunc, -2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := impl.Round(tt.v, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntegerRoundIsIdentity(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, int(0))

	got, err := impl.Round(7, registry.RoundCeil)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestParse(t *testing.T) {
	t.Parallel()

	i32 := opsFor(t, int32(0))

	v, err := i32.Parse("98765", registry.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, int32(98765), v)

	u8 := opsFor(t, uint8(0))

	v, err = u8.Parse("ff", registry.ParseOptions{Base: 16})
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	v, err = i32.Parse("0x2a", registry.ParseOptions{Base: registry.BaseAuto})
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	f64 := opsFor(t, float64(0))

	v, err = f64.Parse("2.5", registry.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = i32.Parse("not a number", registry.ParseOptions{})
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	u8 := opsFor(t, uint8(0))

	s, err := u8.Format(uint8(255), registry.FormatOptions{Verb: "X"})
	require.NoError(t, err)
	assert.Equal(t, "FF", s)

	s, err = u8.Format(uint8(5), registry.FormatOptions{Verb: "08b"})
	require.NoError(t, err)
	assert.Equal(t, "00000101", s)

	i := opsFor(t, int(0))

	s, err = i.Format(42, registry.FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = i.Format(42, registry.FormatOptions{Verb: "Z"})
	require.Error(t, err)
}

func TestFormatLocalized(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, int(0))

	s, err := impl.Format(1234567, registry.FormatOptions{Locale: language.English})
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", s)

	s, err = impl.Format(1234567, registry.FormatOptions{Locale: language.German})
	require.NoError(t, err)
	assert.Equal(t, "1.234.567", s)
}

func TestBounds(t *testing.T) {
	t.Parallel()

	i8 := opsFor(t, int8(0))

	minVal, err := i8.MinValue()
	require.NoError(t, err)
	assert.Equal(t, int8(-128), minVal)

	maxVal, err := i8.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, int8(127), maxVal)

	f64 := opsFor(t, float64(0))

	maxVal, err = f64.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, maxVal)

	bigInt := opsFor(t, (*big.Int)(nil))

	_, err = bigInt.MinValue()
	require.ErrorIs(t, err, registry.ErrUnsupportedOperation)
}

func TestBigInt(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, (*big.Int)(nil))

	a, b := big.NewInt(2), big.NewInt(3)

	sum, err := impl.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, "5", sum.(*big.Int).String())

	// operands stay untouched
	assert.Equal(t, "2", a.String())
	assert.Equal(t, "3", b.String())

	huge := "123456789012345678901234567890"

	v, err := impl.Parse(huge, registry.ParseOptions{})
	require.NoError(t, err)

	s, err := impl.Format(v, registry.FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, huge, s)

	conv, err := impl.Convert(int64(-7))
	require.NoError(t, err)
	assert.Equal(t, "-7", conv.(*big.Int).String())

	assert.Panics(t, func() {
		_, _ = impl.Div(big.NewInt(1), big.NewInt(0))
	})
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, decimal.Decimal{})

	sum, err := impl.Add(decimal.MustParse("1.5"), decimal.MustParse("2.25"))
	require.NoError(t, err)
	assert.Equal(t, "3.75", sum.(decimal.Decimal).String())

	// default rounding is half to even
	rounded, err := impl.Round(decimal.MustParse("2.5"), registry.RoundHalfEven)
	require.NoError(t, err)
	assert.Equal(t, "2", rounded.(decimal.Decimal).String())

	rounded, err = impl.Round(decimal.MustParse("2.5"), registry.RoundHalfAway)
	require.NoError(t, err)
	assert.Equal(t, "3", rounded.(decimal.Decimal).String())

	rounded, err = impl.Round(decimal.MustParse("-2.5"), registry.RoundHalfAway)
	require.NoError(t, err)
	assert.Equal(t, "-3", rounded.(decimal.Decimal).String())

	_, err = impl.Div(decimal.MustParse("1"), decimal.MustParse("0"))
	require.Error(t, err)

	sign, err := impl.Sign(decimal.MustParse("-3.2"))
	require.NoError(t, err)
	assert.Equal(t, -1, sign)

	_, err = impl.And(decimal.MustParse("1"), decimal.MustParse("2"))
	require.ErrorIs(t, err, registry.ErrUnsupportedOperation)
}

func TestConvertNarrowing(t *testing.T) {
	t.Parallel()

	i8 := opsFor(t, int8(0))

	v, err := i8.Convert(int64(300))
	require.NoError(t, err)
	assert.Equal(t, int8(44), v)

	v, err = i8.Convert(float64(2.9))
	require.NoError(t, err)
	assert.Equal(t, int8(2), v)

	v, err = i8.Convert(big.NewInt(300))
	require.NoError(t, err)
	assert.Equal(t, int8(44), v)

	f32 := opsFor(t, float32(0))

	v, err = f32.Convert(1)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)

	// named types backed by an integer kind convert through reflection
	type distance int

	v, err = opsFor(t, int(0)).Convert(distance(5))
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = i8.Convert("nope")
	require.Error(t, err)
}

func TestOperandTypeMismatch(t *testing.T) {
	t.Parallel()

	impl := opsFor(t, int32(0))

	_, err := impl.Add(int32(1), int64(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operand must be int32")
}
