package cachedresults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

const SQLiteStoreType = "sqlite"

const sqliteSchema = `CREATE TABLE IF NOT EXISTS cached_results (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
)`

// SQLiteStore keeps every entry as a row in a single database file. An
// expires_at of zero never expires.
type SQLiteStore struct {
	db         *sql.DB
	expiration time.Duration
	now        func() time.Time
}

func NewSQLiteStore(ctx context.Context, path string, expiration time.Duration) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("Opened SQLite cache")

	return &SQLiteStore{
		db:         db,
		expiration: expiration,
		now:        time.Now,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key any) (any, error) {
	var value string
	var expiresAt int64

	err := s.db.QueryRowContext(ctx, `SELECT value, expires_at FROM cached_results WHERE key = ?`, fmt.Sprint(key)).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", ErrCacheMiss, key)
	}
	if err != nil {
		return nil, err
	}

	if expiresAt != 0 && s.now().Unix() >= expiresAt {
		return nil, fmt.Errorf("%w: %v expired", ErrCacheMiss, key)
	}

	return value, nil
}

func (s *SQLiteStore) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	value, err := s.Get(ctx, key)
	return value, s.expiration, err
}

func (s *SQLiteStore) Set(ctx context.Context, key any, value any, _ ...store.Option) error {
	var data string
	switch v := value.(type) {
	case string:
		data = v
	case []byte:
		data = string(v)
	default:
		return fmt.Errorf("sqlite store cannot persist %T", value)
	}

	var expiresAt int64
	if s.expiration > 0 {
		expiresAt = s.now().Add(s.expiration).Unix()
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO cached_results (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		fmt.Sprint(key), data, expiresAt)

	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, key any) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cached_results WHERE key = ?`, fmt.Sprint(key))
	return err
}

func (s *SQLiteStore) Invalidate(_ context.Context, _ ...store.InvalidateOption) error {
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cached_results`)
	return err
}

func (s *SQLiteStore) GetType() string {
	return SQLiteStoreType
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
