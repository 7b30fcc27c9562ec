package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func createdAt(t model.Task, at time.Time) model.Task {
	t.CreatedAt = at
	return t
}

func TestCalculate_Totals(t *testing.T) {
	from := StartOfDay(now)
	tasks := []model.Task{
		createdAt(model.Task{Status: model.StatusCompleted, Amount: 1000, IsPaid: true}, now),
		createdAt(model.Task{Amount: 500}, now),
		createdAt(model.Task{Status: model.StatusCompleted}, now),
	}

	snap := Calculate(tasks, nil, from, from.AddDate(0, 0, 1))

	assert.Equal(t, 3, snap.Total)
	assert.Equal(t, 2, snap.Completed)
	assert.Equal(t, 1, snap.Pending)
	assert.Equal(t, 1500.0, snap.TotalAmount)
	assert.Equal(t, 1000.0, snap.PaidAmount)
	assert.Equal(t, 500.0, snap.UnpaidAmount)
	assert.Equal(t, 67, snap.CompletionRate)
}

func TestCalculate_PeriodBoundaries(t *testing.T) {
	from := StartOfDay(now)
	to := from.AddDate(0, 0, 1)
	tasks := []model.Task{
		createdAt(model.Task{Title: "at start"}, from),
		createdAt(model.Task{Title: "before"}, from.Add(-time.Second)),
		createdAt(model.Task{Title: "at end"}, to),
	}

	snap := Calculate(tasks, nil, from, to)
	assert.Equal(t, 1, snap.Total)
}

func TestCalculate_Empty(t *testing.T) {
	snap := Calculate(nil, nil, StartOfDay(now), StartOfDay(now).AddDate(0, 0, 1))
	assert.Zero(t, snap.Total)
	assert.Zero(t, snap.CompletionRate)
	assert.NotNil(t, snap.ByCategory)
}

func TestCalculate_ByCategory(t *testing.T) {
	from := StartOfDay(now)
	cats := []model.Category{
		{ID: "design", Name: "Design", Color: "#f00", Icon: "🎨"},
		{ID: "idle", Name: "Idle"},
	}
	tasks := []model.Task{
		createdAt(model.Task{CategoryID: "design", Status: model.StatusCompleted, Amount: 900, IsPaid: true}, now),
		createdAt(model.Task{CategoryID: "design", Amount: 100}, now),
		createdAt(model.Task{CategoryID: "elsewhere"}, now),
	}

	snap := Calculate(tasks, cats, from, from.AddDate(0, 0, 1))

	design := snap.ByCategory["design"]
	assert.Equal(t, "Design", design.Name)
	assert.Equal(t, 2, design.Total)
	assert.Equal(t, 1, design.Completed)
	assert.Equal(t, 1, design.Pending)
	assert.Equal(t, 1000.0, design.TotalAmount)
	assert.Equal(t, 900.0, design.PaidAmount)

	assert.Zero(t, snap.ByCategory["idle"].Total)
}

func TestWeek_StartsSunday(t *testing.T) {
	// 2025-06-15 is a Sunday; the week is [Jun 15, Jun 22).
	tasks := []model.Task{
		createdAt(model.Task{Title: "sunday"}, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)),
		createdAt(model.Task{Title: "saturday"}, time.Date(2025, 6, 21, 8, 0, 0, 0, time.UTC)),
		createdAt(model.Task{Title: "last week"}, time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)),
	}

	snap := Week(tasks, nil, now)
	assert.Equal(t, 2, snap.Total)
}

func TestMonth_CoversWholeMonth(t *testing.T) {
	tasks := []model.Task{
		createdAt(model.Task{Title: "first"}, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		createdAt(model.Task{Title: "last day"}, time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)),
		createdAt(model.Task{Title: "july"}, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
	}

	snap := Month(tasks, nil, now)
	assert.Equal(t, 2, snap.Total)
}

func TestToday(t *testing.T) {
	tasks := []model.Task{
		createdAt(model.Task{Title: "today"}, now.Add(-time.Hour)),
		createdAt(model.Task{Title: "yesterday"}, now.AddDate(0, 0, -1)),
	}
	snap := Today(tasks, nil, now)
	assert.Equal(t, 1, snap.Total)
}
