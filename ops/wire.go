// Package ops is the generic entry point for numeric operations. Every free
// function is parameterized by the operand type and opens with a concrete
// type switch over the built-in set, so the common case compiles down to the
// native machine operation. Types outside the switch fall through to the
// process-wide registry, where the standard provider chain (built-ins,
// nullable lifting, enum reinterpretation) and any user extensions live.
package ops

import (
	"numops/builtin"
	"numops/enumops"
	"numops/nullable"
	"numops/registry"
)

// Importing ops wires the standard provider chain into the default registry.
// Order matters: built-ins first, then the composite adapters, which resolve
// their element types back through the same registry.
func init() {
	registry.RegisterProvider(builtin.Provider())
	registry.RegisterProvider(nullable.NewProvider(registry.Default))
	registry.RegisterProvider(enumops.NewProvider(registry.Default))
}

// RegisterFor installs a custom Operations implementation for the type T.
// Registration fails when T is already serviced, built-in types included.
func RegisterFor[T any](impl registry.Operations) error {
	return registry.RegisterFor[T](impl)
}

// RegisterProvider appends p to the default registry's provider chain, after
// the standard chain.
func RegisterProvider(p registry.Provider) {
	registry.RegisterProvider(p)
}
