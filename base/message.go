package base

import (
	"fmt"
	"reflect"
	"strings"
)

// compose turns the arguments of a set-mode error call into the stored
// value: exactly one non-primitive argument passes through untouched,
// anything else concatenates into a single string with no separators.
func compose(args []any) any {
	if len(args) == 1 && !primitive(args[0]) {
		return args[0]
	}

	var sb strings.Builder

	for _, a := range args {
		fmt.Fprint(&sb, a)
	}

	return sb.String()
}

// primitive reports whether v is a plain scalar (string, bool, integer,
// float, or complex). Everything else, nil included, counts as structured
// and is preserved identity-intact by compose.
func primitive(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
