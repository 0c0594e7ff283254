package primitive

type CategoryEnum int

const (
	CategoryArithmetic CategoryEnum = 1 << iota // add, sub, mul, div, rem
	CategoryNegation                            // unary minus (signed integers, floats, big, decimal)
	CategoryBitwise                             // and, or, xor, not
	CategoryShift                               // shift left/right
	CategoryOrdering                            // compare, less, greater, equality
	CategoryRounding                            // round, floor, ceil, trunc (identity on integers)
	CategoryBounded                             // min/max value queries

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone = 0               // no categories selected
)

var kindCategories map[KindEnum]CategoryEnum

func init() {
	kindCategories = make(map[KindEnum]CategoryEnum, KindTotal)

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		set := CategoryArithmetic | CategoryOrdering | CategoryRounding

		switch {
		case kind.IsSigned():
			set |= CategoryNegation | CategoryBitwise | CategoryShift | CategoryBounded
		case kind.IsUnsigned():
			set |= CategoryBitwise | CategoryShift | CategoryBounded
		case kind.IsFloat():
			set |= CategoryNegation | CategoryBounded
		case kind == KindBigInt:
			set |= CategoryNegation | CategoryBitwise | CategoryShift
		case kind == KindDecimal:
			set |= CategoryNegation | CategoryBounded
		}

		kindCategories[kind] = set
	}
}

// Supports reports whether every operation category in the set is meaningful
// for the kind. Probing here avoids triggering unsupported-operation errors
// from the operation entry points.
func (k KindEnum) Supports(categories CategoryEnum) bool {
	return kindCategories[k]&categories == categories
}

// Categories returns the full capability set of the kind.
func (k KindEnum) Categories() CategoryEnum {
	return kindCategories[k]
}
