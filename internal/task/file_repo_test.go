package task

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestFileRepo_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewFileRepo(dir, quietLogger())
	require.NoError(t, err)

	created, err := repo.Create(model.Task{Title: "persisted", Amount: 1_500_000})
	require.NoError(t, err)

	reopened, err := NewFileRepo(dir, quietLogger())
	require.NoError(t, err)

	got, err := reopened.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title)
	assert.Equal(t, 1_500_000.0, got.Amount)
}

func TestFileRepo_SkipsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	blob := `{"tasks":{` +
		`"good":{"id":"good","title":"fine"},` +
		`"bad":{"id":"bad","amount":"not a number"}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(blob), 0o644))

	repo, err := NewFileRepo(dir, quietLogger())
	require.NoError(t, err)

	ts, err := repo.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, model.TaskID("good"), ts[0].ID)

	_, err = repo.Get("bad")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepo_ReplaceAll(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepo(dir, quietLogger())
	require.NoError(t, err)

	_, err = repo.Create(model.Task{Title: "old"})
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceAll([]model.Task{
		{ID: "kept", Title: "imported"},
		{Title: "needs id"},
	}))

	ts, err := repo.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, ts, 2)
	for _, task := range ts {
		assert.NotEmpty(t, task.ID)
		assert.NotEqual(t, "old", task.Title)
	}
}

func TestFileRepo_FreshDirStartsEmpty(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir(), quietLogger())
	require.NoError(t, err)

	ts, err := repo.List(ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, ts)
}
