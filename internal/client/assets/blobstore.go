// Package assets fetches protected binary resources (audio, PDFs) and
// manages their transient local representations.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ErrRevoked indicates a handle was already revoked. Revoke must be called
// exactly once per Materialize; a second call is a caller bug.
var ErrRevoked = errors.New("blob handle already revoked")

// Handle is a revocable local reference to materialized bytes. Holders must
// revoke it when it is superseded or its owning view goes away, else the
// backing file lives for the rest of the process.
type Handle struct {
	ID   string
	Name string
	Path string
}

// BlobStore materializes raw bytes as local objects and revokes them.
type BlobStore interface {
	Materialize(name string, data []byte) (*Handle, error)
	Revoke(h *Handle) error
}

// TempStore keeps materialized blobs as files in a scratch directory.
type TempStore struct {
	dir string

	mu   sync.Mutex
	live map[string]string
}

// NewTempStore creates a store rooted at dir, creating it if needed. An empty
// dir falls back to the system temp directory.
func NewTempStore(dir string) (*TempStore, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "meetingmind-blobs")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &TempStore{dir: dir, live: make(map[string]string)}, nil
}

func (s *TempStore) Materialize(name string, data []byte) (*Handle, error) {
	id := uuid.NewString()
	path := filepath.Join(s.dir, id)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("materialize blob: %w", err)
	}

	s.mu.Lock()
	s.live[id] = path
	s.mu.Unlock()

	return &Handle{ID: id, Name: name, Path: path}, nil
}

func (s *TempStore) Revoke(h *Handle) error {
	s.mu.Lock()
	path, ok := s.live[h.ID]
	if ok {
		delete(s.live, h.ID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrRevoked
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("revoke blob: %w", err)
	}
	return nil
}

// Live returns the number of handles not yet revoked.
func (s *TempStore) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}
