package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"ecoparking/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New connects to the primary Redis. It returns nil when caching is disabled or Redis is unreachable.
func New(cfg *config.Config) *goRedis.Client {
	if !cfg.Cache.Enable {
		log.Debug().Msg("Cache disabled, Redis not connected")

		return nil
	}

	primary := cfg.Cache.Redis.Primary
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(fmt.Errorf("ping redis: %w", err)).Msg("Failed to connect to Redis, continuing without cache")

		_ = client.Close()

		return nil
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
