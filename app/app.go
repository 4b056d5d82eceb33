// Package app wires the chess stats API: the chess.com client, the stats
// pipeline, and the static portfolio content, behind a shared gin router.
package app

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Kemori82/site/app/config"
)

var cfg *config.Config

// MustInit loads process configuration into the package and configures the
// global logger from it. Call once before NewRouter.
func MustInit() {
	c, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	Init(c)
}

// Init installs an already loaded configuration.
func Init(c *config.Config) {
	cfg = c

	level, err := zerolog.ParseLevel(c.Logs.Level)
	if err != nil || c.Logs.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.Logs.Style == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
