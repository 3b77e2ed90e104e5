package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"ecoparking/config"
	"ecoparking/di"
	"ecoparking/infras/kafka"
	"ecoparking/shared/logger"

	"github.com/rs/zerolog/log"
)

// ledger tails the event topic and writes every reservation, payment and citation event to the log.
func main() {
	cfg := config.Get()

	logger.Init(os.Stdout, cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("KAFKA_ENABLE is not set, there is no ledger to follow")
	}

	publisher, cleanup, err := di.InitializePublisher()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the ledger")
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("topic", cfg.Kafka.Topic).Str("group", cfg.Kafka.ConsumerGroup).Msg("Following ledger.")

	err = publisher.Consume(ctx, func(event kafka.Event, payload json.RawMessage) {
		if len(payload) == 0 {
			payload = json.RawMessage("null")
		}

		log.Info().
			Str("type", event.Type).
			Str("key", event.Key).
			Time("occurred_at", event.OccurredAt).
			RawJSON("payload", payload).
			Msg("Ledger event")
	})
	if err != nil {
		log.Error().Err(err).Msg("Ledger consumer stopped")
	}
}
