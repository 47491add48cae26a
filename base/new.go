package base

import (
	"github.com/next-trace/scg-base/config"
	"github.com/next-trace/scg-base/contract"
)

// factoryBinder is satisfied by any type embedding Base. The method is
// unexported, so only Base provides the factory slot; implementations of
// contract.Module that do not embed Base simply skip the passthrough.
type factoryBinder interface{ bindFactory(any) }

// New constructs a P (= *T) from either a ready-made configuration mapping
// or alternating key/value arguments:
//
//	w, ok := base.New[Widget](config.Config{"name": "foo"})
//	w, ok := base.New[Widget]("name", "foo")
//
// Arguments are normalized into one mapping before any type-specific logic
// runs, the factory passthrough is bound, and the type's Init hook decides
// acceptance. On refusal New mirrors the instance's recorded error into T's
// type-level slot and returns the zero P with ok=false; the caller, holding
// no instance, reads the reason with LastErr[T]().
func New[T any, P interface {
	*T
	contract.Module
}](args ...any) (P, bool) {
	cfg := config.New(args...)

	inst := P(new(T))

	if v, ok := cfg[FactoryKey]; ok {
		if fb, ok := any(inst).(factoryBinder); ok {
			fb.bindFactory(v)
		}
	}

	if inst.Init(cfg) {
		return inst, true
	}

	record(typeOf[T](), inst.Err())

	var none P

	return none, false
}
