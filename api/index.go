package handler

import (
	"net/http"
	"os"
	"sync"

	"ecoparking/config"
	"ecoparking/di"
	"ecoparking/shared/logger"
	"ecoparking/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	server  http.Handler
	initErr error
)

// Handler serves the reporting API from a serverless function. The injector runs once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Init(os.Stdout, cfg.Server.Env)

		logger.SetLogLevel(cfg)

		h, _, err := di.InitializeServer()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize HTTP handler")

			initErr = err

			return
		}

		server = h.Handler()
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
