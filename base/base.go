package base

import (
	"github.com/next-trace/scg-base/config"
	"github.com/next-trace/scg-base/contract"
)

// FactoryKey is the one configuration key the constructor interprets: its
// value, when present, is copied verbatim onto the instance and exposed via
// Factory. The base facility never validates or dereferences it.
const FactoryKey = "factory"

// Base is the embeddable construction base for SCG components.
//
// It carries the per-instance error slot and the factory passthrough, and
// supplies a default accepting Init, so Base is directly constructible on
// its own as a trivial concrete type. Derived types embed it and override
// Init with their own validation.
type Base struct {
	err     any
	factory any
}

// compile-time guarantee that *Base implements contract.Module
var _ contract.Module = (*Base)(nil)

// Init is the default initialization hook: accept any configuration,
// perform no checks, leave the instance unchanged. Derived types override
// it to validate the mapping and configure themselves.
func (b *Base) Init(_ config.Config) bool { return true }

// Err returns the error message or structured value last recorded on this
// instance, "" when nothing was recorded. It never mutates.
func (b *Base) Err() any {
	if b == nil || b.err == nil {
		return ""
	}

	return b.err
}

// Fail records an error on this instance and returns false, so a hook
// declines in one step:
//
//	return w.Fail("No name!")
//
// A single non-primitive argument (an error, a struct, a map) is stored
// as-is so callers can inspect it instead of a formatted string; any other
// argument list is concatenated into one string.
func (b *Base) Fail(args ...any) bool {
	if b != nil {
		b.err = compose(args)
	}

	return false
}

// Factory returns the value copied from the configuration's "factory" key
// at construction, nil when the key was absent.
func (b *Base) Factory() any {
	if b == nil {
		return nil
	}

	return b.factory
}

// bindFactory is the constructor's hook for the factory passthrough. The
// method is unexported, so only types embedding Base carry the slot.
func (b *Base) bindFactory(v any) { b.factory = v }
