package category

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

type fileState struct {
	Categories map[string]model.Category `json:"categories"`
}

// FileRepo persists categories in a JSON file. A fresh store is seeded
// with the default categories.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "categories.json"),
		s:    fileState{Categories: map[string]model.Category{}},
	}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return r, nil
}

func (r *FileRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			for _, c := range Defaults() {
				r.s.Categories[c.ID] = c
			}
			return r.saveLocked()
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Categories == nil {
		loaded.Categories = map[string]model.Category{}
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Create(c model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.s.Categories[c.ID] = c
	if err := r.saveLocked(); err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *FileRepo) Get(id string) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.s.Categories[id]
	if !ok {
		return model.Category{}, ErrNotFound
	}
	return c, nil
}

func (r *FileRepo) Update(id string, p Patch) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.s.Categories[id]
	if !ok {
		return model.Category{}, ErrNotFound
	}
	applyPatch(&c, p)
	r.s.Categories[id] = c
	if err := r.saveLocked(); err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *FileRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.s.Categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.Categories, id)
	return r.saveLocked()
}

func (r *FileRepo) List() ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0, len(r.s.Categories))
	for _, c := range r.s.Categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ReplaceAll swaps the entire category set, used by import.
func (r *FileRepo) ReplaceAll(categories []model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := map[string]model.Category{}
	for _, c := range categories {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		next[c.ID] = c
	}
	r.s.Categories = next
	return r.saveLocked()
}
