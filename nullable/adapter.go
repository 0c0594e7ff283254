package nullable

import (
	"fmt"
	"reflect"

	"numops/registry"
)

// nullableOps lifts the operations of an underlying numeric type through
// null-propagation: absent operands make binary and unary results absent,
// equality treats two absent values as equal, and every ordering comparison
// involving an absent value is false. The last rule means x < y and x >= y
// can both be false at once when one side is absent; that collapse is
// deliberate and covered by tests, not an oversight to normalize away.
type nullableOps struct {
	typ  reflect.Type // the Nullable[X] type
	elem registry.Operations
}

func newNullableOps(typ reflect.Type, elem registry.Operations) nullableOps {
	return nullableOps{typ: typ, elem: elem}
}

func (o nullableOps) Type() reflect.Type { return o.typ }

// unwrap splits a boxed Nullable value into its inner value and presence.
func (o nullableOps) unwrap(v any) (any, bool, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != o.typ {
		return nil, false, fmt.Errorf("operand must be %s, got %T", o.typ, v)
	}

	if !rv.Field(1).Bool() {
		return nil, false, nil
	}

	return rv.Field(0).Interface(), true, nil
}

func (o nullableOps) wrap(inner any) any {
	out := reflect.New(o.typ).Elem()
	out.Field(0).Set(reflect.ValueOf(inner))
	out.Field(1).SetBool(true)

	return out.Interface()
}

func (o nullableOps) none() any {
	return reflect.Zero(o.typ).Interface()
}

func (o nullableOps) binary(a, b any, op func(x, y any) (any, error)) (any, error) {
	x, okx, err := o.unwrap(a)
	if err != nil {
		return nil, err
	}

	y, oky, err := o.unwrap(b)
	if err != nil {
		return nil, err
	}

	if !okx || !oky {
		return o.none(), nil
	}

	res, err := op(x, y)
	if err != nil {
		return nil, err
	}

	return o.wrap(res), nil
}

func (o nullableOps) unary(v any, op func(x any) (any, error)) (any, error) {
	x, ok, err := o.unwrap(v)
	if err != nil {
		return nil, err
	}

	if !ok {
		return o.none(), nil
	}

	res, err := op(x)
	if err != nil {
		return nil, err
	}

	return o.wrap(res), nil
}

// ordered delegates an ordering comparison, collapsing to false when either
// side is absent.
func (o nullableOps) ordered(a, b any, op func(x, y any) (bool, error)) (bool, error) {
	x, okx, err := o.unwrap(a)
	if err != nil {
		return false, err
	}

	y, oky, err := o.unwrap(b)
	if err != nil {
		return false, err
	}

	if !okx || !oky {
		return false, nil
	}

	return op(x, y)
}

func (o nullableOps) Zero() any { return o.none() }

func (o nullableOps) One() any { return o.wrap(o.elem.One()) }

func (o nullableOps) MinValue() (any, error) {
	v, err := o.elem.MinValue()
	if err != nil {
		return nil, err
	}

	return o.wrap(v), nil
}

func (o nullableOps) MaxValue() (any, error) {
	v, err := o.elem.MaxValue()
	if err != nil {
		return nil, err
	}

	return o.wrap(v), nil
}

func (o nullableOps) Add(a, b any) (any, error) { return o.binary(a, b, o.elem.Add) }
func (o nullableOps) Sub(a, b any) (any, error) { return o.binary(a, b, o.elem.Sub) }
func (o nullableOps) Mul(a, b any) (any, error) { return o.binary(a, b, o.elem.Mul) }
func (o nullableOps) Div(a, b any) (any, error) { return o.binary(a, b, o.elem.Div) }
func (o nullableOps) Rem(a, b any) (any, error) { return o.binary(a, b, o.elem.Rem) }

func (o nullableOps) Neg(v any) (any, error) { return o.unary(v, o.elem.Neg) }
func (o nullableOps) Abs(v any) (any, error) { return o.unary(v, o.elem.Abs) }

func (o nullableOps) And(a, b any) (any, error) { return o.binary(a, b, o.elem.And) }
func (o nullableOps) Or(a, b any) (any, error)  { return o.binary(a, b, o.elem.Or) }
func (o nullableOps) Xor(a, b any) (any, error) { return o.binary(a, b, o.elem.Xor) }
func (o nullableOps) Not(v any) (any, error)    { return o.unary(v, o.elem.Not) }

func (o nullableOps) ShiftLeft(v any, n uint) (any, error) {
	return o.unary(v, func(x any) (any, error) { return o.elem.ShiftLeft(x, n) })
}

func (o nullableOps) ShiftRight(v any, n uint) (any, error) {
	return o.unary(v, func(x any) (any, error) { return o.elem.ShiftRight(x, n) })
}

// Compare keeps a total order for callers that need one: absent sorts
// before every present value. The dedicated ordering predicates below do
// NOT agree with it when one side is absent; see the type comment.
func (o nullableOps) Compare(a, b any) (int, error) {
	x, okx, err := o.unwrap(a)
	if err != nil {
		return 0, err
	}

	y, oky, err := o.unwrap(b)
	if err != nil {
		return 0, err
	}

	switch {
	case !okx && !oky:
		return 0, nil
	case !okx:
		return -1, nil
	case !oky:
		return 1, nil
	}

	return o.elem.Compare(x, y)
}

func (o nullableOps) Equal(a, b any) (bool, error) {
	x, okx, err := o.unwrap(a)
	if err != nil {
		return false, err
	}

	y, oky, err := o.unwrap(b)
	if err != nil {
		return false, err
	}

	if !okx || !oky {
		return okx == oky, nil
	}

	return o.elem.Equal(x, y)
}

func (o nullableOps) Less(a, b any) (bool, error)      { return o.ordered(a, b, o.elem.Less) }
func (o nullableOps) LessEq(a, b any) (bool, error)    { return o.ordered(a, b, o.elem.LessEq) }
func (o nullableOps) Greater(a, b any) (bool, error)   { return o.ordered(a, b, o.elem.Greater) }
func (o nullableOps) GreaterEq(a, b any) (bool, error) { return o.ordered(a, b, o.elem.GreaterEq) }

func (o nullableOps) Sign(v any) (int, error) {
	x, ok, err := o.unwrap(v)
	if err != nil {
		return 0, err
	}

	if !ok {
		return SignNone, nil
	}

	return o.elem.Sign(x)
}

func (o nullableOps) Round(v any, mode registry.RoundMode) (any, error) {
	return o.unary(v, func(x any) (any, error) { return o.elem.Round(x, mode) })
}

func (o nullableOps) Convert(v any) (any, error) {
	if reflect.TypeOf(v) == o.typ {
		return v, nil
	}

	inner, err := o.elem.Convert(v)
	if err != nil {
		return nil, err
	}

	return o.wrap(inner), nil
}

func (o nullableOps) Parse(s string, opts registry.ParseOptions) (any, error) {
	if s == "" || s == "null" {
		return o.none(), nil
	}

	inner, err := o.elem.Parse(s, opts)
	if err != nil {
		return nil, err
	}

	return o.wrap(inner), nil
}

func (o nullableOps) Format(v any, opts registry.FormatOptions) (string, error) {
	x, ok, err := o.unwrap(v)
	if err != nil {
		return "", err
	}

	if !ok {
		return "null", nil
	}

	return o.elem.Format(x, opts)
}
