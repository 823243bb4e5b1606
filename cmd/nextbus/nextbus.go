package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/config"
	"github.com/travigo/nextbus/pkg/nextbus"

	_ "time/tzdata"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	closeLog, err := nextbus.SetupLogging(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	app := nextbus.NewApp(cfg)

	err = app.Run(os.Args)
	closeLog()

	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
