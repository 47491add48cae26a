package config

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode unmarshals the mapping into target, which must be a pointer to a
// struct. Fields are matched by `mapstructure` tags. Input is weakly typed,
// so "8080" decodes into an int field and scalar/slice mismatches are
// reconciled where possible.
//
// Hooks that prefer typed validation over key-by-key lookups decode the
// mapping once and validate the struct.
func Decode(cfg Config, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return dec.Decode(map[string]any(cfg))
}
