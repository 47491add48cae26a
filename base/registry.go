package base

import (
	"reflect"
	"sync"
)

// typeErrs holds one error slot per concrete type, for callers that hold
// no instance (a failed construction yields only the type). Slots live for
// the process lifetime and are never torn down.
var typeErrs = struct {
	sync.RWMutex
	m map[reflect.Type]any
}{m: make(map[reflect.Type]any)}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// LastErr returns the error recorded against T's type-level slot, "" when
// nothing was recorded. Slots are independent across types: a failure on
// one derived type never shows up on another, nor on Base itself.
func LastErr[T any]() any {
	typeErrs.RLock()
	defer typeErrs.RUnlock()

	if v, ok := typeErrs.m[typeOf[T]()]; ok && v != nil {
		return v
	}

	return ""
}

// FailType records an error against T's type-level slot and returns false.
// It follows the same message rule as Base.Fail: a single non-primitive
// argument is stored as-is, anything else concatenates into one string.
func FailType[T any](args ...any) bool {
	record(typeOf[T](), compose(args))
	return false
}

func record(t reflect.Type, v any) {
	typeErrs.Lock()
	typeErrs.m[t] = v
	typeErrs.Unlock()
}
