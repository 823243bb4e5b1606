package cachedresults

import (
	"context"
	"fmt"

	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/config"
	"github.com/travigo/nextbus/pkg/redis_client"
)

// Setup builds the Cache for the configured backend.
func Setup(ctx context.Context, cfg config.CacheConfig, redisConfig config.RedisConfig) (*Cache, error) {
	var cacheStore store.StoreInterface
	var closer func() error

	switch cfg.Backend {
	case "memory", "":
		cacheStore = NewMemoryStore(cfg.Size, cfg.Expiration.Std())
	case "file":
		cacheStore = NewFileStore(cfg.Directory)
	case "sqlite":
		sqliteStore, err := NewSQLiteStore(ctx, cfg.Database, cfg.Expiration.Std())
		if err != nil {
			return nil, err
		}
		cacheStore = sqliteStore
		closer = sqliteStore.Close
	case "redis":
		client, err := redis_client.Connect(ctx, redisConfig)
		if err != nil {
			return nil, err
		}

		var options []store.Option
		if cfg.Expiration > 0 {
			options = append(options, store.WithExpiration(cfg.Expiration.Std()))
		}
		cacheStore = redisstore.NewRedis(client, options...)
		closer = client.Close
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}

	log.Debug().Str("backend", cfg.Backend).Msg("Cache set up")

	c := New(cacheStore)
	c.closer = closer

	return c, nil
}
