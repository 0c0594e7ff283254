package ops

import (
	"math"

	"numops/registry"
)

// Round rounds v to an integral value using mode. The zero mode is half to
// even. Integer kinds return v unchanged.
func Round[T any](v T, mode RoundMode) (T, error) {
	switch x := any(v).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return v, nil
	case float32:
		return any(float32(roundFloat(float64(x), mode))).(T), nil
	case float64:
		return any(roundFloat(x, mode)).(T), nil
	}

	var zero T

	impl, err := registry.RequireFor[T]()
	if err != nil {
		return zero, err
	}

	out, err := impl.Round(v, mode)
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}

// Floor rounds v towards negative infinity.
func Floor[T any](v T) (T, error) {
	return Round(v, RoundFloor)
}

// Ceil rounds v towards positive infinity.
func Ceil[T any](v T) (T, error) {
	return Round(v, RoundCeil)
}

// Trunc rounds v towards zero.
func Trunc[T any](v T) (T, error) {
	return Round(v, RoundTrunc)
}

func roundFloat(x float64, mode RoundMode) float64 {
	switch mode {
	default:
		return math.RoundToEven(x)
	case RoundHalfAway:
		return math.Round(x)
	case RoundFloor:
		return math.Floor(x)
	case RoundCeil:
		return math.Ceil(x)
	case RoundTrunc:
		return math.Trunc(x)
	}
}
