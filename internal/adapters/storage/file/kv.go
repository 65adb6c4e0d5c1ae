package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"barabom/internal/ports/kv"
)

// KV persists each key as one JSON blob file under dir. A total-bytes quota
// is checked before every write; an over-quota Set leaves the existing file
// untouched.
type KV struct {
	mu       sync.Mutex
	dir      string
	maxBytes int
}

// NewKV creates the data dir if needed. maxBytes <= 0 means no quota.
func NewKV(dir string, maxBytes int) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &KV{dir: dir, maxBytes: maxBytes}, nil
}

func (s *KV) path(key string) string {
	// Keys are fixed identifiers ("timeline", "medications", ...), but don't
	// trust them as path components.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, safe+".json")
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxBytes > 0 {
		total, err := s.totalSizeExcept(key)
		if err != nil {
			return err
		}
		if total+len(value) > s.maxBytes {
			return kv.ErrQuotaExceeded
		}
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *KV) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return kv.ErrNotFound
	}
	return err
}

func (s *KV) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (s *KV) totalSizeExcept(key string) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}
	skip := filepath.Base(s.path(key))
	total := 0
	for _, e := range entries {
		if e.IsDir() || e.Name() == skip || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return 0, err
		}
		total += int(info.Size())
	}
	return total, nil
}
