package cachedresults

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/util"
)

var ErrCacheMiss = errors.New("cache miss")

type FetchFunc func(ctx context.Context) json.RawMessage

// IsCacheMiss reports whether err means the key is absent. The memory, file
// and sqlite stores return ErrCacheMiss, the redis store returns gocache's
// NotFound.
func IsCacheMiss(err error) bool {
	if errors.Is(err, ErrCacheMiss) || errors.Is(err, &store.NotFound{}) {
		return true
	}

	var notFound *store.NotFound
	return errors.As(err, &notFound)
}

// Cache memoizes fetch results by logical query key. Empty results are never
// stored, so a failed fetch is retried on the next call.
type Cache struct {
	Cache *cache.Cache[string]

	storeType string
	closer    func() error
}

func New(s store.StoreInterface) *Cache {
	return &Cache{
		Cache:     cache.New[string](s),
		storeType: s.GetType(),
	}
}

// GetOrFetch returns the cached value for key unless force is set, otherwise
// calls fetch once and stores a non-empty result.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc, force bool) json.RawMessage {
	if !force {
		value, err := c.Cache.Get(ctx, key)
		if err == nil && !util.IsEmptyJSON([]byte(value)) {
			log.Debug().Str("key", key).Str("store", c.storeType).Msg("Cache hit")
			return json.RawMessage(value)
		}
		if err != nil && !IsCacheMiss(err) {
			log.Debug().Err(err).Str("key", key).Msg("Cache read failed")
		}
	}

	value := fetch(ctx)
	if util.IsEmptyJSON(value) {
		log.Debug().Str("key", key).Msg("Fetch returned no data, cache left untouched")
		return value
	}

	if err := c.Cache.Set(ctx, key, string(value)); err != nil {
		log.Warn().Err(err).Str("key", key).Str("store", c.storeType).Msg("Failed to write cache entry")
	}

	return value
}

// Invalidate drops key so the next GetOrFetch goes to the source.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.Cache.Delete(ctx, key)
}

// Close releases the backend connection, if the store holds one.
func (c *Cache) Close() error {
	if c.closer == nil {
		return nil
	}

	return c.closer()
}
