package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

func strp(s string) *string                { return &s }
func boolp(b bool) *bool                   { return &b }
func intp(v int) *int                      { return &v }
func statusp(s model.Status) *model.Status { return &s }

func TestMemoryRepo_CreateDefaults(t *testing.T) {
	repo := NewMemoryRepo()

	got, err := repo.Create(model.Task{Title: "invoice client"})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, model.TypeIncome, got.TaskType)
	assert.NotNil(t, got.DailyCheckins)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())

	stored, err := repo.Get(got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Title, stored.Title)
}

func TestMemoryRepo_GetMissing(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_UpdatePatchSemantics(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.Create(model.Task{Title: "draft poster", Amount: 800_000})
	require.NoError(t, err)

	got, err := repo.Update(created.ID, Patch{
		Title:      strp("final poster"),
		Importance: intp(3),
	})
	require.NoError(t, err)

	assert.Equal(t, "final poster", got.Title)
	require.NotNil(t, got.Importance)
	assert.Equal(t, 3, *got.Importance)
	// Untouched fields survive.
	assert.Equal(t, 800_000.0, got.Amount)
}

func TestMemoryRepo_CompleteSetsTimestamp(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.Create(model.Task{Title: "ship it"})
	require.NoError(t, err)

	done, err := repo.Update(created.ID, Patch{Status: statusp(model.StatusCompleted)})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	first := *done.CompletedAt

	// Completing again keeps the original timestamp.
	again, err := repo.Update(created.ID, Patch{Status: statusp(model.StatusCompleted)})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, again.CompletedAt.Equal(first))

	reopened, err := repo.Update(created.ID, Patch{Status: statusp(model.StatusPending)})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)
}

func TestMemoryRepo_DeadlineClear(t *testing.T) {
	repo := NewMemoryRepo()
	deadline := time.Now().Add(48 * time.Hour)
	created, err := repo.Create(model.Task{Title: "with deadline", Deadline: &deadline})
	require.NoError(t, err)

	var zero time.Time
	got, err := repo.Update(created.ID, Patch{Deadline: &zero})
	require.NoError(t, err)
	assert.Nil(t, got.Deadline)
}

func TestMemoryRepo_Delete(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.Create(model.Task{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))
	assert.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)
	_, err = repo.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_ListFilters(t *testing.T) {
	repo := NewMemoryRepo()

	overdue := time.Now().Add(-48 * time.Hour)
	seed := []model.Task{
		{Title: "income pending", TaskType: model.TypeIncome, Amount: 100},
		{Title: "invest", TaskType: model.TypeInvestment, IsLongTerm: true},
		{Title: "done", Status: model.StatusCompleted},
		{Title: "late", Deadline: &overdue},
		{Title: "tagged", CategoryID: "cat-1"},
	}
	for _, s := range seed {
		_, err := repo.Create(s)
		require.NoError(t, err)
	}

	titles := func(filter ListFilter) []string {
		got, err := repo.List(filter)
		require.NoError(t, err)
		out := make([]string, len(got))
		for i, task := range got {
			out[i] = task.Title
		}
		return out
	}

	assert.Len(t, titles(ListFilter{}), 5)
	assert.ElementsMatch(t, []string{"done"}, titles(ListFilter{Status: "completed"}))
	assert.ElementsMatch(t, []string{"late"}, titles(ListFilter{Status: "overdue"}))
	assert.ElementsMatch(t, []string{"invest"}, titles(ListFilter{Type: "investment"}))
	assert.ElementsMatch(t, []string{"tagged"}, titles(ListFilter{CategoryID: "cat-1"}))
	assert.ElementsMatch(t, []string{"invest"}, titles(ListFilter{LongTerm: boolp(true)}))
	assert.NotContains(t, titles(ListFilter{Type: "income"}), "invest")
}

func TestMemoryRepo_ListOrderedByCreation(t *testing.T) {
	repo := NewMemoryRepo()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(model.Task{
			Title:     string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	got, err := repo.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt))
	}
}
