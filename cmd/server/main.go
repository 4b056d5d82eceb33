package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Kemori82/site/app"
	"github.com/Kemori82/site/app/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	app.Init(cfg)

	router := app.NewRouter()
	log.Info().Str("addr", cfg.Listen).Msg("starting server")
	if err := router.Run(cfg.Listen); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
