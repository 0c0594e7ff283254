package registry

import "reflect"

// Default is the process-wide registry used by the generic operation entry
// points. Importing the ops package wires the standard provider chain
// (built-in types, nullable lifting, enum reinterpretation) into it; user
// providers registered afterwards rank below the standard chain. It lives
// until process exit and is never torn down.
var Default = New()

// Resolve resolves t against the Default registry.
func Resolve(t reflect.Type) (Operations, error) {
	return Default.Resolve(t)
}

// Require resolves t against the Default registry, failing with a detailed
// unsupported-type error on a miss.
func Require(t reflect.Type) (Operations, error) {
	return Default.Require(t)
}

// Register installs impl for t in the Default registry.
func Register(t reflect.Type, impl Operations) error {
	return Default.Register(t, impl)
}

// RegisterFor installs impl for the type T in the Default registry. This is
// the static wiring path for custom numeric types that do not need a
// provider.
func RegisterFor[T any](impl Operations) error {
	return Default.Register(TypeFor[T](), impl)
}

// ResolveFor resolves the type T against the Default registry.
func ResolveFor[T any]() (Operations, error) {
	return Default.Resolve(TypeFor[T]())
}

// RequireFor resolves the type T against the Default registry, failing with
// a detailed unsupported-type error on a miss.
func RequireFor[T any]() (Operations, error) {
	return Default.Require(TypeFor[T]())
}

// RegisterProvider appends p to the Default registry's provider chain.
func RegisterProvider(p Provider) {
	Default.RegisterProvider(p)
}
