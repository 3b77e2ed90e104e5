package main

import (
	"ecoparking/config"
	"ecoparking/di"
	"ecoparking/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	console, cleanup, err := di.InitializeConsole()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start EcoParking")
	}
	defer cleanup()

	console.Serve()
}
