package di

import (
	"context"
	"fmt"
	"time"

	"ecoparking/config"
	"ecoparking/helper"
	"ecoparking/infras/database"
	"ecoparking/infras/kafka"
	"ecoparking/infras/otel"

	"github.com/rs/zerolog/log"
)

const flushTimeout = 5 * time.Second

// provideDatabase opens the record store and applies pending migrations when configured to.
func provideDatabase(cfg *config.Config) (*database.Connection, func(), error) {
	conn, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open record store: %w", err)
	}

	if err = helper.AutoMigrate(cfg, conn); err != nil {
		_ = conn.Close()

		return nil, nil, fmt.Errorf("failed to migrate record store: %w", err)
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close record store")
		}
	}

	return conn, cleanup, nil
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	ot := otel.New(cfg)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := ot.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}

	return ot, cleanup
}

func providePublisher(cfg *config.Config, ot otel.Otel) (kafka.Publisher, func()) {
	publisher := kafka.New(cfg, ot)

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close ledger publisher")
		}
	}

	return publisher, cleanup
}
