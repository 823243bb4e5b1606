package cachedresults

import (
	"context"
	"fmt"
	"time"

	"github.com/bluele/gcache"
	"github.com/eko/gocache/lib/v4/store"
)

const MemoryStoreType = "gcache"

const defaultMemoryStoreSize = 1024

// MemoryStore is a process-lifetime LRU store. A zero expiration keeps
// entries until they are evicted.
type MemoryStore struct {
	client     gcache.Cache
	expiration time.Duration
}

func NewMemoryStore(size int, expiration time.Duration) *MemoryStore {
	if size <= 0 {
		size = defaultMemoryStoreSize
	}

	return &MemoryStore{
		client:     gcache.New(size).LRU().Build(),
		expiration: expiration,
	}
}

func (s *MemoryStore) Get(_ context.Context, key any) (any, error) {
	value, err := s.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheMiss, key)
	}

	return value, nil
}

func (s *MemoryStore) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	value, err := s.Get(ctx, key)
	return value, s.expiration, err
}

func (s *MemoryStore) Set(_ context.Context, key any, value any, _ ...store.Option) error {
	if s.expiration > 0 {
		return s.client.SetWithExpire(key, value, s.expiration)
	}

	return s.client.Set(key, value)
}

func (s *MemoryStore) Delete(_ context.Context, key any) error {
	s.client.Remove(key)
	return nil
}

func (s *MemoryStore) Invalidate(_ context.Context, _ ...store.InvalidateOption) error {
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.client.Purge()
	return nil
}

func (s *MemoryStore) GetType() string {
	return MemoryStoreType
}
