package config

import "fmt"

// Config is the normalized configuration mapping handed to initialization
// hooks. Keys are plain strings; values are whatever the caller supplied.
type Config map[string]any

// New folds constructor arguments into a single Config.
//
// Two calling conventions are accepted:
//   - a single Config (or map[string]any) argument is used as-is
//   - anything else is treated as alternating key/value pairs and folded
//     pairwise into a fresh mapping
//
// Folding is total: non-string keys are stringified, and a trailing key
// with no value maps to nil. Callers therefore always hand hooks exactly
// one mapping, regardless of how construction was invoked.
func New(args ...any) Config {
	if len(args) == 1 {
		switch m := args[0].(type) {
		case Config:
			return m
		case map[string]any:
			return Config(m)
		}
	}

	cfg := make(Config, (len(args)+1)/2)

	for i := 0; i < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprint(args[i])
		}

		if i+1 < len(args) {
			cfg[k] = args[i+1]
			continue
		}

		cfg[k] = nil
	}

	return cfg
}

// Has reports whether key is present in the mapping.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// String returns the value at key as a string, or "" when the key is
// absent or holds a non-string value.
func (c Config) String(key string) string {
	s, _ := c[key].(string)
	return s
}
