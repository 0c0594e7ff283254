package ops

import (
	"fmt"

	"golang.org/x/text/language"

	"numops/registry"
)

// Parse parses s as a T in base 10.
func Parse[T any](s string) (T, error) {
	return ParseWith[T](s, ParseOptions{})
}

// ParseWith parses s with explicit options. Base applies to integer kinds
// only; BaseAuto detects 0x, 0o and 0b prefixes.
func ParseWith[T any](s string, opts ParseOptions) (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	out, err := impl.Parse(s, opts)
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}

// TryParse parses s as a T, reporting success instead of an error.
func TryParse[T any](s string) (T, bool) {
	out, err := Parse[T](s)

	return out, err == nil
}

// MustParse is Parse that panics on failure, for literals in wiring code.
func MustParse[T any](s string) T {
	out, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("parse %q as %s: %v", s, registry.TypeFor[T](), err))
	}

	return out
}

// Format renders v using an fmt verb without the leading percent sign, such
// as "X", "08b" or ".2f". The empty verb is the type's default rendering.
func Format[T any](v T, verb string) (string, error) {
	impl, err := registry.RequireFor[T]()
	if err != nil {
		return "", err
	}

	return impl.Format(v, FormatOptions{Verb: verb})
}

// FormatLocalized renders v with the digit grouping and decimal separator of
// the given locale.
func FormatLocalized[T any](v T, tag language.Tag) (string, error) {
	impl, err := registry.RequireFor[T]()
	if err != nil {
		return "", err
	}

	return impl.Format(v, FormatOptions{Locale: tag})
}
