package memory

import (
	"context"
	"sync"

	"barabom/internal/ports/kv"
)

// KV is a map-backed blob store. Default backend in dev mode and the test
// harness for quota failures (set MaxBytes low enough and Set starts
// returning kv.ErrQuotaExceeded).
type KV struct {
	mu       sync.RWMutex
	data     map[string][]byte
	maxBytes int
}

// NewKV creates an in-memory blob store. maxBytes <= 0 means no quota.
func NewKV(maxBytes int) *KV {
	return &KV{
		data:     make(map[string][]byte),
		maxBytes: maxBytes,
	}
}

func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxBytes > 0 {
		total := len(value)
		for k, v := range s.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > s.maxBytes {
			return kv.ErrQuotaExceeded
		}
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *KV) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return kv.ErrNotFound
	}
	delete(s.data, key)
	return nil
}

func (s *KV) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)
	return nil
}
