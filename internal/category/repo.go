package category

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

var ErrNotFound = errors.New("category not found")

type Patch struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

type Repo interface {
	Create(c model.Category) (model.Category, error)
	Get(id string) (model.Category, error)
	Update(id string, patch Patch) (model.Category, error)
	Delete(id string) error
	List() ([]model.Category, error)
}

// Defaults are the categories seeded into an empty store.
func Defaults() []model.Category {
	return []model.Category{
		{ID: "architecture", Name: "Architecture", Color: "#3b82f6", Icon: "🏛️"},
		{ID: "poster", Name: "Poster", Color: "#8b5cf6", Icon: "🎨"},
		{ID: "trading", Name: "Trading", Color: "#22c55e", Icon: "📈"},
		{ID: "other", Name: "Other", Color: "#6b7280", Icon: "📋"},
	}
}

func applyPatch(c *model.Category, p Patch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
}

type MemoryRepo struct {
	mu         sync.RWMutex
	categories map[string]model.Category
}

func NewMemoryRepo() *MemoryRepo {
	r := &MemoryRepo{categories: map[string]model.Category{}}
	for _, c := range Defaults() {
		r.categories[c.ID] = c
	}
	return r
}

func (r *MemoryRepo) Create(c model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.categories[c.ID] = c
	return c, nil
}

func (r *MemoryRepo) Get(id string) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return model.Category{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryRepo) Update(id string, p Patch) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return model.Category{}, ErrNotFound
	}
	applyPatch(&c, p)
	r.categories[id] = c
	return c, nil
}

func (r *MemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *MemoryRepo) List() ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
