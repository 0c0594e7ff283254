package ops

import "numops/registry"

// Aliases for the option types, so facade callers do not need to import the
// registry package for everyday calls.
type (
	RoundMode     = registry.RoundMode
	ParseOptions  = registry.ParseOptions
	FormatOptions = registry.FormatOptions
)

const (
	RoundHalfEven = registry.RoundHalfEven
	RoundHalfAway = registry.RoundHalfAway
	RoundFloor    = registry.RoundFloor
	RoundCeil     = registry.RoundCeil
	RoundTrunc    = registry.RoundTrunc

	BaseAuto = registry.BaseAuto
)

// apply2 routes a binary operation through the registry for types outside
// the built-in fast path.
func apply2[T any](a, b T, call func(registry.Operations, any, any) (any, error)) (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	out, err := call(impl, a, b)
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}

// apply1 is apply2 for unary operations.
func apply1[T any](v T, call func(registry.Operations, any) (any, error)) (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	out, err := call(impl, v)
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}

func applyCmp[T any](a, b T) (int, error) {
	impl, err := registry.RequireFor[T]()
	if err != nil {
		return 0, err
	}

	return impl.Compare(a, b)
}

func applyPred[T any](a, b T, call func(registry.Operations, any, any) (bool, error)) (bool, error) {
	impl, err := registry.RequireFor[T]()
	if err != nil {
		return false, err
	}

	return call(impl, a, b)
}

func applyShift[T any](v T, n uint, call func(registry.Operations, any, uint) (any, error)) (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	out, err := call(impl, v, n)
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}
