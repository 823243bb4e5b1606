package redis_client

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/config"
)

// Connect opens a client for the Redis cache backend and checks it answers.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	options := &redis.Options{
		Addr: cfg.Address,
		DB:   cfg.Database,
	}
	if cfg.Password != "" {
		options.Password = cfg.Password
	}

	client := redis.NewClient(options)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Address, err)
	}

	log.Debug().Str("address", cfg.Address).Int("database", cfg.Database).Msg("Connected to Redis")

	return client, nil
}
