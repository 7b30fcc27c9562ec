package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

func TestMemoryRepo_SeedsDefaults(t *testing.T) {
	repo := NewMemoryRepo()

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, len(Defaults()))

	c, err := repo.Get("trading")
	require.NoError(t, err)
	assert.Equal(t, "Trading", c.Name)
}

func TestMemoryRepo_CRUD(t *testing.T) {
	repo := NewMemoryRepo()

	created, err := repo.Create(model.Category{Name: "Branding", Color: "#111"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	name := "Brand work"
	updated, err := repo.Update(created.ID, Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Brand work", updated.Name)
	// Untouched fields survive.
	assert.Equal(t, "#111", updated.Color)

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_UpdateMissing(t *testing.T) {
	repo := NewMemoryRepo()
	name := "x"
	_, err := repo.Update("missing", Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete("missing"), ErrNotFound)
}

func TestMemoryRepo_ListSortedByName(t *testing.T) {
	repo := NewMemoryRepo()
	got, err := repo.List()
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Name, got[i].Name)
	}
}
