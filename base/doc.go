// Package base provides the uniform two-phase construction pattern shared
// by SCG components: a generic constructor plus an overridable
// initialization hook, and a common error-reporting convention.
//
// Key characteristics:
//   - New normalizes either a ready-made mapping or alternating key/value
//     arguments into one config.Config before any type-specific logic runs
//   - Base is embeddable and directly constructible; its default Init
//     accepts unconditionally
//   - Derived types override Init to validate, declining with Fail, which
//     records a reason and returns the failure sentinel in one step
//   - Err reads per-instance error state; LastErr and FailType read and
//     write the per-type slot used when a failed construction left the
//     caller with no instance
//   - A single structured Fail argument is preserved identity-intact, so
//     rich error values survive alongside plain message strings
//
// Failures never panic; they propagate through (zero, false) returns plus
// the error slots, and every call site checks the bool before use.
package base
