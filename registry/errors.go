package registry

import (
	"errors"
	"reflect"
)

var (
	// ErrNotFound means no implementation is resolvable for the requested
	// type. Callers must register support or avoid the type; nothing in this
	// package retries or recovers.
	ErrNotFound = errors.New("no numeric operations implementation found")

	// ErrAlreadyRegistered guards against replacing semantics of an already
	// resolvable type, built-in or user-supplied.
	ErrAlreadyRegistered = errors.New("numeric operations already registered")

	// ErrProviderMismatch means a provider answered with an implementation
	// servicing a different type than requested. This is a configuration
	// error, not a recoverable condition.
	ErrProviderMismatch = errors.New("provider returned operations for a mismatched type")

	// ErrUnsupportedOperation means the operation is defined on the
	// Operations interface but meaningless for the concrete type, e.g.
	// bitwise ops on floats or negation on unsigned integers.
	ErrUnsupportedOperation = errors.New("unsupported operation for numeric type")
)

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
