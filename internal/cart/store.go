package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// Store persists the full cart state for a session. Save replaces the whole
// cart in one write, so readers never observe a half-applied mutation.
type Store interface {
	Load(sessionID string) ([]model.CartItem, error)
	Save(sessionID string, items []model.CartItem) error
}

// MemoryStore keeps carts in process memory. Used by tests and as the
// default backend when no data directory is configured.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]model.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]model.CartItem)}
}

func (s *MemoryStore) Load(sessionID string) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.carts[sessionID]), nil
}

func (s *MemoryStore) Save(sessionID string, items []model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cloneItems(items)
	return nil
}

// FileStore persists all session carts into one JSON file, rewritten whole
// on every save via a temp file and rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(sessionID string) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	carts, err := s.read()
	if err != nil {
		return nil, err
	}
	return carts[sessionID], nil
}

func (s *FileStore) Save(sessionID string, items []model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	carts, err := s.read()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		delete(carts, sessionID)
	} else {
		carts[sessionID] = cloneItems(items)
	}
	return s.write(carts)
}

func (s *FileStore) read() (map[string][]model.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]model.CartItem{}, nil
	}
	if err != nil {
		return nil, &model.StorageError{Op: "read carts", Err: err}
	}
	carts := map[string][]model.CartItem{}
	if err := json.Unmarshal(data, &carts); err != nil {
		return nil, &model.StorageError{Op: "decode carts", Err: err}
	}
	return carts, nil
}

func (s *FileStore) write(carts map[string][]model.CartItem) error {
	data, err := json.MarshalIndent(carts, "", "  ")
	if err != nil {
		return &model.StorageError{Op: "encode carts", Err: err}
	}
	tmp := fmt.Sprintf("%s.tmp", s.path)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &model.StorageError{Op: "write carts", Err: err}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &model.StorageError{Op: "write carts", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &model.StorageError{Op: "write carts", Err: err}
	}
	return nil
}

func cloneItems(items []model.CartItem) []model.CartItem {
	if items == nil {
		return nil
	}
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}
