// Package nullable provides an optional numeric value and the adapter that
// lifts the operations of any resolvable numeric type through
// null-propagation.
package nullable

// SignNone is the Sign result for an absent value, distinct from the
// -1/0/1 results of present values.
const SignNone = -2

// Nullable carries a value of T that may be absent. The zero value is
// absent. Fields are exported so the adapter can reach them reflectively;
// prefer the constructors and Get over touching them directly.
type Nullable[T any] struct {
	Val   T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Val: v, Valid: true}
}

// None returns the absent value.
func None[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Get returns the carried value and whether it is present.
func (n Nullable[T]) Get() (T, bool) {
	return n.Val, n.Valid
}

// GetOr returns the carried value, or fallback when absent.
func (n Nullable[T]) GetOr(fallback T) T {
	if !n.Valid {
		return fallback
	}

	return n.Val
}
