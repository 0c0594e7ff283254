package ops

import "fmt"

// Num wraps a value of T with an operator-style method surface for
// expression chaining: N(a).Add(b).Mul(c).Value(). Methods panic when the
// underlying operation fails, so chains stay free of error plumbing; use the
// free functions where failures are expected.
type Num[T any] struct {
	v T
}

// N wraps v.
func N[T any](v T) Num[T] {
	return Num[T]{v: v}
}

// Value unwraps the carried value.
func (n Num[T]) Value() T {
	return n.v
}

func (n Num[T]) Add(other T) Num[T] {
	return Num[T]{v: must(Add(n.v, other))}
}

func (n Num[T]) Sub(other T) Num[T] {
	return Num[T]{v: must(Sub(n.v, other))}
}

func (n Num[T]) Mul(other T) Num[T] {
	return Num[T]{v: must(Mul(n.v, other))}
}

func (n Num[T]) Div(other T) Num[T] {
	return Num[T]{v: must(Div(n.v, other))}
}

func (n Num[T]) Rem(other T) Num[T] {
	return Num[T]{v: must(Rem(n.v, other))}
}

func (n Num[T]) Neg() Num[T] {
	return Num[T]{v: must(Neg(n.v))}
}

func (n Num[T]) Abs() Num[T] {
	return Num[T]{v: must(Abs(n.v))}
}

func (n Num[T]) Round(mode RoundMode) Num[T] {
	return Num[T]{v: must(Round(n.v, mode))}
}

func (n Num[T]) Cmp(other T) int {
	return must(Compare(n.v, other))
}

func (n Num[T]) Equal(other T) bool {
	return must(Equal(n.v, other))
}

func (n Num[T]) Less(other T) bool {
	return must(Less(n.v, other))
}

func (n Num[T]) Greater(other T) bool {
	return must(Greater(n.v, other))
}

func (n Num[T]) Sign() int {
	return must(Sign(n.v))
}

// String renders the default formatting of the carried value.
func (n Num[T]) String() string {
	s, err := Format(n.v, "")
	if err != nil {
		return fmt.Sprint(n.v)
	}

	return s
}

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}
