package credentials

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and as a fallback when no
// durable storage is configured.
type MemoryStore struct {
	mu        sync.Mutex
	token     string
	callbacks []func(token string)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	callbacks := append([]func(string){}, s.callbacks...)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(token)
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	return s.SetToken(ctx, "")
}

func (s *MemoryStore) OnChange(fn func(token string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, fn)
}
