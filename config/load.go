package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FromFile loads a Config from a YAML or JSON file, chosen by extension.
// The file's top level must be a mapping; nested values are kept as-is.
func FromFile(path string) (Config, error) {
	k := koanf.New(".")

	var parser koanf.Parser

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	return Config(k.Raw()), nil
}

// FromEnv loads a Config from environment variables carrying the given
// prefix. The prefix is stripped, names are lowercased, and "__" becomes
// the nesting delimiter, so SCG__DB__HOST with prefix "SCG__" yields the
// key "db.host".
func FromEnv(prefix string) (Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(prefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, err
	}

	return Config(k.Raw()), nil
}
