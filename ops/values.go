package ops

import (
	"numops/nullable"
	"numops/registry"
)

// Zero returns the additive identity of T.
func Zero[T any]() (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	return impl.Zero().(T), nil
}

// One returns the multiplicative identity of T.
func One[T any]() (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	return impl.One().(T), nil
}

// MinValue returns the smallest representable value of T. Unbounded types
// such as *big.Int report the operation as unsupported.
func MinValue[T any]() (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	out, err := impl.MinValue()
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}

// MaxValue returns the largest representable value of T.
func MaxValue[T any]() (T, error) {
	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	out, err := impl.MaxValue()
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}

// Convert produces a To from v with native narrowing semantics: a wider
// integer truncates into a narrower one, floats round towards zero when
// targeting integers. Converting an absent nullable yields To's zero value.
func Convert[From, To any](v From) (To, error) {
	var zero To

	if registry.TypeFor[From]() == registry.TypeFor[To]() {
		return any(v).(To), nil
	}

	impl, err := registry.RequireFor[To]()
	if err != nil {
		return zero, err
	}

	src := any(v)
	if payload, valid, isNullable := nullable.Unwrap(src); isNullable {
		if !valid {
			return impl.Zero().(To), nil
		}

		src = payload
	}

	out, err := impl.Convert(src)
	if err != nil {
		return zero, err
	}

	return out.(To), nil
}

// MustConvert is Convert that panics on failure.
func MustConvert[From, To any](v From) To {
	out, err := Convert[From, To](v)
	if err != nil {
		panic(err)
	}

	return out
}
