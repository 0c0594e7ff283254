package enumops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numops/builtin"
	"numops/enumops"
	"numops/registry"
)

type Color int32

const (
	ColorRed Color = iota + 1
	ColorGreen
	ColorBlue
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	default:
		return "Color(?)"
	}
}

func (c Color) IsValid() bool {
	return c >= ColorRed && c <= ColorBlue
}

// Weekday has no String or IsValid method, so the adapter falls back to the
// numeric paths.
type Weekday uint8

func newTestRegistry() *registry.Registry {
	r := registry.New(builtin.Provider())
	r.RegisterProvider(enumops.NewProvider(r))

	return r
}

func colorOps(t *testing.T) registry.Operations {
	t.Helper()

	impl, err := newTestRegistry().Resolve(registry.TypeFor[Color]())
	require.NoError(t, err)

	return impl
}

func TestArithmeticOnBitPattern(t *testing.T) {
	t.Parallel()

	impl := colorOps(t)

	// Red is 1; adding it to itself gives the bit pattern of Green
	sum, err := impl.Add(ColorRed, ColorRed)
	require.NoError(t, err)
	assert.Equal(t, ColorGreen, sum)

	diff, err := impl.Sub(ColorBlue, ColorGreen)
	require.NoError(t, err)
	assert.Equal(t, ColorRed, diff)
}

func TestOrderingDelegates(t *testing.T) {
	t.Parallel()

	impl := colorOps(t)

	c, err := impl.Compare(ColorRed, ColorBlue)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	less, err := impl.Less(ColorRed, ColorBlue)
	require.NoError(t, err)
	assert.True(t, less)
}

func TestFormatPrefersStringer(t *testing.T) {
	t.Parallel()

	impl := colorOps(t)

	s, err := impl.Format(ColorRed, registry.FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Red", s)

	// an explicit verb bypasses the String method
	s, err = impl.Format(ColorRed, registry.FormatOptions{Verb: "d"})
	require.NoError(t, err)
	assert.Equal(t, "1", s)
}

func TestFormatWithoutStringer(t *testing.T) {
	t.Parallel()

	impl, err := newTestRegistry().Resolve(registry.TypeFor[Weekday]())
	require.NoError(t, err)

	s, err := impl.Format(Weekday(3), registry.FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "3", s)
}

func TestParseValidatesMembers(t *testing.T) {
	t.Parallel()

	impl := colorOps(t)

	v, err := impl.Parse("2", registry.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, ColorGreen, v)

	_, err = impl.Parse("9", registry.ParseOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid")
}

func TestParseWithoutIsValidAcceptsAnyValue(t *testing.T) {
	t.Parallel()

	impl, err := newTestRegistry().Resolve(registry.TypeFor[Weekday]())
	require.NoError(t, err)

	v, err := impl.Parse("200", registry.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, Weekday(200), v)
}

func TestLayoutMismatchFailsConstruction(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	under, err := r.Resolve(registry.TypeFor[int64]())
	require.NoError(t, err)

	// Color is 4 bytes, int64 is 8: the adapter must refuse
	_, err = enumops.NewOperations(registry.TypeFor[Color](), under)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage layout")
}

func TestConvertFromPlainInteger(t *testing.T) {
	t.Parallel()

	impl := colorOps(t)

	v, err := impl.Convert(int64(3))
	require.NoError(t, err)
	assert.Equal(t, ColorBlue, v)

	// same-type values pass through untouched
	v, err = impl.Convert(ColorGreen)
	require.NoError(t, err)
	assert.Equal(t, ColorGreen, v)
}

func TestIdentitiesAndBounds(t *testing.T) {
	t.Parallel()

	impl := colorOps(t)

	assert.Equal(t, Color(0), impl.Zero())
	assert.Equal(t, ColorRed, impl.One())

	maxVal, err := impl.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, Color(1<<31-1), maxVal)
}
