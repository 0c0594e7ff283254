package ops

import "numops/utils"

// Constraint aliases, so code constraining its own generics to the
// fixed-width numeric families does not need a second import.
type (
	Signed   = utils.Signed
	Unsigned = utils.Unsigned
	Integer  = utils.Integer
	Float    = utils.Float
	Number   = utils.Number
)
