// Package main demonstrates deriving a constructible type from scg-base.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/next-trace/scg-base/base"
	"github.com/next-trace/scg-base/config"
)

// Widget is a minimal derived type: it refuses construction without a name
// and decodes the rest of its configuration into typed fields.
type Widget struct {
	base.Base
	Name    string `mapstructure:"name"`
	Retries int    `mapstructure:"retries"`
}

func (w *Widget) Init(cfg config.Config) bool {
	if !cfg.Has("name") {
		return w.Fail("No name!")
	}

	if err := config.Decode(cfg, w); err != nil {
		return w.Fail(err)
	}

	return true
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Pairs form.
	w, ok := base.New[Widget]("name", "conveyor", "retries", 3)
	if !ok {
		log.Fatal().Any("reason", base.LastErr[Widget]()).Msg("construction declined")
	}

	log.Info().Str("name", w.Name).Int("retries", w.Retries).Msg("constructed from pairs")

	// Mapping form, with the factory passthrough.
	w, ok = base.New[Widget](config.Config{"name": "press", "factory": "line-7"})
	if ok {
		log.Info().Str("name", w.Name).Any("factory", w.Factory()).Msg("constructed from mapping")
	}

	// A declined construction leaves no instance; the type slot carries
	// the reason.
	if _, ok := base.New[Widget]("retries", 5); !ok {
		log.Warn().Any("reason", base.LastErr[Widget]()).Msg("construction declined")
	}

	// Configuration can come from a file as well.
	if path := os.Getenv("WIDGET_CONFIG"); path != "" {
		cfg, err := config.FromFile(path)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}

		if w, ok := base.New[Widget](cfg); ok {
			log.Info().Str("name", w.Name).Msg("constructed from file")
		}
	}
}
