package enumops

import (
	"fmt"
	"reflect"

	"golang.org/x/text/language"

	"numops/registry"
)

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// validatable is the conventional self-check interface of generated enum
// types.
type validatable interface {
	IsValid() bool
}

// enumOps reinterprets values of a named integer-backed type as the
// underlying built-in type for every operation, and reinterprets results
// back on the way out. Formatting prefers the enum's own String method when
// no explicit style is requested; parsing validates through IsValid when
// the type provides it.
type enumOps struct {
	typ       reflect.Type
	underType reflect.Type
	under     registry.Operations
	stringer  bool
}

// NewOperations builds the adapter for typ on top of the operations of its
// declared underlying type. The layout check rejects a mismatched
// declaration once, here, instead of corrupting values on every call.
func NewOperations(typ reflect.Type, under registry.Operations) (registry.Operations, error) {
	if err := checkSameLayout(typ, under.Type()); err != nil {
		return nil, fmt.Errorf("enum adapter for %s: %w", typ, err)
	}

	return enumOps{
		typ:       typ,
		underType: under.Type(),
		under:     under,
		stringer:  typ.Implements(stringerType),
	}, nil
}

func (o enumOps) Type() reflect.Type { return o.typ }

func (o enumOps) toUnder(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != o.typ {
		return nil, fmt.Errorf("operand must be %s, got %T", o.typ, v)
	}

	return sameLayoutCast(rv, o.underType).Interface(), nil
}

func (o enumOps) fromUnder(v any) any {
	return sameLayoutCast(reflect.ValueOf(v), o.typ).Interface()
}

func (o enumOps) binary(a, b any, op func(x, y any) (any, error)) (any, error) {
	x, err := o.toUnder(a)
	if err != nil {
		return nil, err
	}

	y, err := o.toUnder(b)
	if err != nil {
		return nil, err
	}

	res, err := op(x, y)
	if err != nil {
		return nil, err
	}

	return o.fromUnder(res), nil
}

func (o enumOps) unary(v any, op func(x any) (any, error)) (any, error) {
	x, err := o.toUnder(v)
	if err != nil {
		return nil, err
	}

	res, err := op(x)
	if err != nil {
		return nil, err
	}

	return o.fromUnder(res), nil
}

func (o enumOps) predicate(a, b any, op func(x, y any) (bool, error)) (bool, error) {
	x, err := o.toUnder(a)
	if err != nil {
		return false, err
	}

	y, err := o.toUnder(b)
	if err != nil {
		return false, err
	}

	return op(x, y)
}

func (o enumOps) Zero() any { return o.fromUnder(o.under.Zero()) }
func (o enumOps) One() any  { return o.fromUnder(o.under.One()) }

func (o enumOps) MinValue() (any, error) {
	v, err := o.under.MinValue()
	if err != nil {
		return nil, err
	}

	return o.fromUnder(v), nil
}

func (o enumOps) MaxValue() (any, error) {
	v, err := o.under.MaxValue()
	if err != nil {
		return nil, err
	}

	return o.fromUnder(v), nil
}

func (o enumOps) Add(a, b any) (any, error) { return o.binary(a, b, o.under.Add) }
func (o enumOps) Sub(a, b any) (any, error) { return o.binary(a, b, o.under.Sub) }
func (o enumOps) Mul(a, b any) (any, error) { return o.binary(a, b, o.under.Mul) }
func (o enumOps) Div(a, b any) (any, error) { return o.binary(a, b, o.under.Div) }
func (o enumOps) Rem(a, b any) (any, error) { return o.binary(a, b, o.under.Rem) }

func (o enumOps) Neg(v any) (any, error) { return o.unary(v, o.under.Neg) }
func (o enumOps) Abs(v any) (any, error) { return o.unary(v, o.under.Abs) }

func (o enumOps) And(a, b any) (any, error) { return o.binary(a, b, o.under.And) }
func (o enumOps) Or(a, b any) (any, error)  { return o.binary(a, b, o.under.Or) }
func (o enumOps) Xor(a, b any) (any, error) { return o.binary(a, b, o.under.Xor) }
func (o enumOps) Not(v any) (any, error)    { return o.unary(v, o.under.Not) }

func (o enumOps) ShiftLeft(v any, n uint) (any, error) {
	return o.unary(v, func(x any) (any, error) { return o.under.ShiftLeft(x, n) })
}

func (o enumOps) ShiftRight(v any, n uint) (any, error) {
	return o.unary(v, func(x any) (any, error) { return o.under.ShiftRight(x, n) })
}

func (o enumOps) Compare(a, b any) (int, error) {
	x, err := o.toUnder(a)
	if err != nil {
		return 0, err
	}

	y, err := o.toUnder(b)
	if err != nil {
		return 0, err
	}

	return o.under.Compare(x, y)
}

func (o enumOps) Equal(a, b any) (bool, error)     { return o.predicate(a, b, o.under.Equal) }
func (o enumOps) Less(a, b any) (bool, error)      { return o.predicate(a, b, o.under.Less) }
func (o enumOps) LessEq(a, b any) (bool, error)    { return o.predicate(a, b, o.under.LessEq) }
func (o enumOps) Greater(a, b any) (bool, error)   { return o.predicate(a, b, o.under.Greater) }
func (o enumOps) GreaterEq(a, b any) (bool, error) { return o.predicate(a, b, o.under.GreaterEq) }

func (o enumOps) Sign(v any) (int, error) {
	x, err := o.toUnder(v)
	if err != nil {
		return 0, err
	}

	return o.under.Sign(x)
}

func (o enumOps) Round(v any, mode registry.RoundMode) (any, error) {
	return o.unary(v, func(x any) (any, error) { return o.under.Round(x, mode) })
}

func (o enumOps) Convert(v any) (any, error) {
	if reflect.TypeOf(v) == o.typ {
		return v, nil
	}

	res, err := o.under.Convert(v)
	if err != nil {
		return nil, err
	}

	return o.fromUnder(res), nil
}

func (o enumOps) Parse(s string, opts registry.ParseOptions) (any, error) {
	res, err := o.under.Parse(s, opts)
	if err != nil {
		return nil, err
	}

	out := o.fromUnder(res)
	if v, ok := out.(validatable); ok && !v.IsValid() {
		return nil, fmt.Errorf("parsing %q: not a valid %s member", s, o.typ)
	}

	return out, nil
}

func (o enumOps) Format(v any, opts registry.FormatOptions) (string, error) {
	if o.stringer && opts.Verb == "" && opts.Locale == language.Und {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Type() != o.typ {
			return "", fmt.Errorf("operand must be %s, got %T", o.typ, v)
		}

		return v.(fmt.Stringer).String(), nil
	}

	x, err := o.toUnder(v)
	if err != nil {
		return "", err
	}

	return o.under.Format(x, opts)
}
