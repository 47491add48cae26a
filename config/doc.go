// Package config defines the configuration mapping consumed by
// initialization hooks and the helpers that produce one.
//
// A Config can be built four ways:
//   - New with a ready-made mapping (used as-is)
//   - New with alternating key/value arguments (folded pairwise)
//   - FromFile, loading YAML or JSON
//   - FromEnv, loading prefixed environment variables
//
// However it was built, a hook always receives exactly one mapping.
// Decode unmarshals a mapping into a typed struct for hooks that prefer
// struct tags over key lookups.
package config
