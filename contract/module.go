// Package contract exposes the minimal construction interface used by other packages.
//
// Implementations normally embed base.Base, which supplies the error slot,
// the factory passthrough, and a default accepting Init.
package contract

import (
	"github.com/next-trace/scg-base/config"
)

// Module is the minimal, stable surface every constructible type presents.
//
// Implementations must:
//   - Treat Init as the only validation point: record a reason via Fail and
//     return false to decline, return true to accept.
//   - Keep Err a pure read; only Fail (and the constructor's type-level
//     mirror) mutate error state.
//   - Leave the factory value uninterpreted; it is a passthrough for
//     derived types.
//
// The interface intentionally contains only the hook and accessors to keep
// the construction contract minimal.
type Module interface {
	// Init validates and configures a freshly allocated instance against
	// the normalized configuration mapping. Returning false declines the
	// configuration; the reason must already have been recorded via Fail.
	Init(cfg config.Config) bool

	// Err returns the instance's current error message or structured
	// value, "" when nothing was recorded. It never mutates.
	Err() any

	// Fail records an error message or structured value on the instance
	// and returns false, so `return x.Fail("reason")` declines in one step.
	Fail(args ...any) bool

	// Factory returns the value copied from the configuration's "factory"
	// key at construction, nil when the key was absent.
	Factory() any
}
