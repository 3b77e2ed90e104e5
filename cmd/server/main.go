package main

import (
	"os"

	"ecoparking/config"
	"ecoparking/di"
	"ecoparking/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title EcoParking API
// @version 1.0
// @description Reporting and administration API for the EcoParking parking lot.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.Init(os.Stdout, cfg.Server.Env)

	logger.SetLogLevel(cfg)

	http, cleanup, err := di.InitializeServer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
	defer cleanup()

	http.Serve()
}
