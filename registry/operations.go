package registry

import (
	"reflect"

	"golang.org/x/text/language"
)

// RoundMode selects how midpoint and fractional values are resolved.
// The zero value is half-to-even (banker's rounding), which is the default
// everywhere a mode is not requested explicitly.
type RoundMode int

const (
	RoundHalfEven RoundMode = iota // round half to even (default)
	RoundHalfAway                  // round half away from zero
	RoundFloor                     // round towards negative infinity
	RoundCeil                      // round towards positive infinity
	RoundTrunc                     // round towards zero
)

// ParseOptions tunes text-to-number parsing. The zero value means base 10.
type ParseOptions struct {
	// Base applies to integer kinds only. Zero means base 10; use 0 via
	// BaseAuto for prefix detection (0x, 0b, 0o).
	Base int
}

// BaseAuto enables strconv-style base detection from the literal prefix.
const BaseAuto = -1

// FormatOptions tunes number-to-text rendering. The zero value is the
// default decimal rendering.
type FormatOptions struct {
	// Verb is an fmt verb without the leading percent sign, e.g. "X", "08b",
	// ".2f". Empty means the type's default rendering.
	Verb string
	// Locale renders the value with locale-aware digit grouping and decimal
	// separators. language.Und (the zero value) keeps the plain rendering.
	// Locale and Verb are mutually exclusive; Locale wins.
	Locale language.Tag
}

// Operations is the full operation set for exactly one concrete numeric
// type. Implementations are stateless and value-like: any two instances for
// the same type are interchangeable. Operands and results are boxed; every
// implementation accepts only values of its own type and returns
// ErrUnsupportedOperation for operations that are meaningless for it.
type Operations interface {
	// Type is the concrete type this implementation services.
	Type() reflect.Type

	Zero() any
	One() any
	MinValue() (any, error)
	MaxValue() (any, error)

	Add(a, b any) (any, error)
	Sub(a, b any) (any, error)
	Mul(a, b any) (any, error)
	Div(a, b any) (any, error)
	Rem(a, b any) (any, error)
	Neg(v any) (any, error)
	Abs(v any) (any, error)

	And(a, b any) (any, error)
	Or(a, b any) (any, error)
	Xor(a, b any) (any, error)
	Not(v any) (any, error)
	ShiftLeft(v any, n uint) (any, error)
	ShiftRight(v any, n uint) (any, error)

	Compare(a, b any) (int, error)
	Equal(a, b any) (bool, error)
	Less(a, b any) (bool, error)
	LessEq(a, b any) (bool, error)
	Greater(a, b any) (bool, error)
	GreaterEq(a, b any) (bool, error)
	Sign(v any) (int, error)

	Round(v any, mode RoundMode) (any, error)

	// Convert produces a value of this implementation's type from a value of
	// any built-in numeric type, with native narrowing semantics.
	Convert(v any) (any, error)

	Parse(s string, opts ParseOptions) (any, error)
	Format(v any, opts FormatOptions) (string, error)
}

// Provider resolves an Operations implementation for types the registry has
// not seen yet. Provide returns false when the type is outside the
// provider's scope.
type Provider interface {
	Provide(t reflect.Type) (Operations, bool)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(t reflect.Type) (Operations, bool)

func (f ProviderFunc) Provide(t reflect.Type) (Operations, bool) {
	return f(t)
}

// TypeFor is a shorthand for the reflect type of T.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
