package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/HungBoGo/hubogo-note/internal/priority"
)

// Store holds the user-adjustable engine configuration.
type Store interface {
	Weights() (priority.Weights, error)
	SetWeights(w priority.Weights) error
}

type fileState struct {
	PriorityWeights *priority.Weights `json:"priorityWeights,omitempty"`
}

// FileStore persists settings as a JSON key-value file. Missing values
// fall back to engine defaults; partially stored weights are filled in
// field by field.
type FileStore struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	st := &FileStore{path: filepath.Join(dataDir, "settings.json")}
	if err := st.load(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return st, nil
}

func (st *FileStore) load() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	b, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			st.s = fileState{}
			return nil
		}
		return err
	}
	return json.Unmarshal(b, &st.s)
}

func (st *FileStore) saveLocked() error {
	b, err := json.MarshalIndent(st.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, b, 0o644)
}

func (st *FileStore) Weights() (priority.Weights, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if st.s.PriorityWeights == nil {
		return priority.DefaultWeights(), nil
	}
	return st.s.PriorityWeights.Normalized(), nil
}

func (st *FileStore) SetWeights(w priority.Weights) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	w = w.Normalized()
	st.s.PriorityWeights = &w
	return st.saveLocked()
}

// MemoryStore is for tests and defaults-only runs.
type MemoryStore struct {
	mu sync.RWMutex
	w  *priority.Weights
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Weights() (priority.Weights, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.w == nil {
		return priority.DefaultWeights(), nil
	}
	return m.w.Normalized(), nil
}

func (m *MemoryStore) SetWeights(w priority.Weights) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w = w.Normalized()
	m.w = &w
	return nil
}
