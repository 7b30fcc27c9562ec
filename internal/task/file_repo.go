package task

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

type fileState struct {
	Tasks map[model.TaskID]model.Task `json:"tasks"`
}

// FileRepo is a persistent task repository backed by a single JSON file.
// Records that fail to decode are logged and skipped rather than failing
// the whole load.
type FileRepo struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	s      fileState
}

func NewFileRepo(dataDir string, logger *log.Logger) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &FileRepo{
		path:   filepath.Join(dataDir, "tasks.json"),
		logger: logger,
		s:      fileState{Tasks: map[model.TaskID]model.Task{}},
	}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return r, nil
}

func (r *FileRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.s = fileState{Tasks: map[model.TaskID]model.Task{}}
			return nil
		}
		return err
	}

	// Decode record-by-record so one corrupt task doesn't take down the
	// whole store.
	var raw struct {
		Tasks map[model.TaskID]json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	loaded := fileState{Tasks: map[model.TaskID]model.Task{}}
	for id, msg := range raw.Tasks {
		var t model.Task
		if err := json.Unmarshal(msg, &t); err != nil {
			r.logger.Printf("skipping corrupt task %s: %v", id, err)
			continue
		}
		loaded.Tasks[id] = t
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

func (r *FileRepo) Create(t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	t.ID = newID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	normalizeTask(&t)

	r.s.Tasks[t.ID] = t
	if err := r.saveLocked(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *FileRepo) Get(id model.TaskID) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.s.Tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}
	normalizeTask(&t)
	return t, nil
}

func (r *FileRepo) Update(id model.TaskID, p Patch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.s.Tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}

	now := time.Now()
	applyPatch(&t, p, now)
	t.UpdatedAt = now
	normalizeTask(&t)

	r.s.Tasks[id] = t
	if err := r.saveLocked(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *FileRepo) Delete(id model.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.s.Tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.Tasks, id)
	return r.saveLocked()
}

func (r *FileRepo) List(filter ListFilter) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	out := make([]model.Task, 0, len(r.s.Tasks))
	for _, t := range r.s.Tasks {
		normalizeTask(&t)
		if matchesFilter(t, filter, now) {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ReplaceAll swaps the entire task set, used by import.
func (r *FileRepo) ReplaceAll(tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := map[model.TaskID]model.Task{}
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = newID()
		}
		normalizeTask(&t)
		next[t.ID] = t
	}
	r.s.Tasks = next
	return r.saveLocked()
}
