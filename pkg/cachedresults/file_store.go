package cachedresults

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/store"
)

const FileStoreType = "file"

// FileStore keeps one JSON file per key. A file that exists is a hit; there is
// no expiry and writes are not atomic.
type FileStore struct {
	Directory string
}

func NewFileStore(directory string) *FileStore {
	return &FileStore{Directory: directory}
}

// FileName derives the file for a key, e.g. "stops:5:4" becomes "stops_5_4.json".
func FileName(key string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, key)

	return name + ".json"
}

func (s *FileStore) Path(key any) string {
	return filepath.Join(s.Directory, FileName(fmt.Sprint(key)))
}

func (s *FileStore) Get(_ context.Context, key any) (any, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrCacheMiss, key)
	}
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

func (s *FileStore) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	value, err := s.Get(ctx, key)
	return value, 0, err
}

func (s *FileStore) Set(_ context.Context, key any, value any, _ ...store.Option) error {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("file store cannot persist %T", value)
	}

	if err := os.MkdirAll(s.Directory, 0o755); err != nil {
		return err
	}

	return os.WriteFile(s.Path(key), data, 0o644)
}

func (s *FileStore) Delete(_ context.Context, key any) error {
	err := os.Remove(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

func (s *FileStore) Invalidate(_ context.Context, _ ...store.InvalidateOption) error {
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	files, err := filepath.Glob(filepath.Join(s.Directory, "*.json"))
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return err
		}
	}

	return nil
}

func (s *FileStore) GetType() string {
	return FileStoreType
}
