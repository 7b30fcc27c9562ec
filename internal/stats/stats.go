package stats

import (
	"math"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

type CategoryStats struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Pending     int     `json:"pending"`
	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
}

// Snapshot is the aggregate view over the tasks created inside a period.
// CompletionRate is a rounded percentage, 0 for an empty period.
type Snapshot struct {
	Period         string                   `json:"period"`
	Total          int                      `json:"total"`
	Completed      int                      `json:"completed"`
	Pending        int                      `json:"pending"`
	TotalAmount    float64                  `json:"totalAmount"`
	PaidAmount     float64                  `json:"paidAmount"`
	UnpaidAmount   float64                  `json:"unpaidAmount"`
	CompletionRate int                      `json:"completionRate"`
	ByCategory     map[string]CategoryStats `json:"byCategory"`
}

// Calculate builds a snapshot from the tasks whose CreatedAt falls in
// [from, to).
func Calculate(tasks []model.Task, categories []model.Category, from, to time.Time) Snapshot {
	snap := Snapshot{
		Period:     from.Format(model.DateKeyLayout),
		ByCategory: map[string]CategoryStats{},
	}

	inPeriod := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.CreatedAt.Before(from) || !t.CreatedAt.Before(to) {
			continue
		}
		inPeriod = append(inPeriod, t)
	}

	for _, t := range inPeriod {
		snap.Total++
		if t.Completed() {
			snap.Completed++
		}
		snap.TotalAmount += t.Amount
		if t.IsPaid {
			snap.PaidAmount += t.Amount
		} else {
			snap.UnpaidAmount += t.Amount
		}
	}
	snap.Pending = snap.Total - snap.Completed
	if snap.Total > 0 {
		snap.CompletionRate = int(math.Round(float64(snap.Completed) / float64(snap.Total) * 100))
	}

	for _, cat := range categories {
		cs := CategoryStats{Name: cat.Name, Color: cat.Color, Icon: cat.Icon}
		for _, t := range inPeriod {
			if t.CategoryID != cat.ID {
				continue
			}
			cs.Total++
			if t.Completed() {
				cs.Completed++
			} else {
				cs.Pending++
			}
			cs.TotalAmount += t.Amount
			if t.IsPaid {
				cs.PaidAmount += t.Amount
			}
		}
		snap.ByCategory[cat.ID] = cs
	}

	return snap
}

// Today covers the local calendar day containing now.
func Today(tasks []model.Task, categories []model.Category, now time.Time) Snapshot {
	from := StartOfDay(now)
	return Calculate(tasks, categories, from, from.AddDate(0, 0, 1))
}

// Week covers the week containing now, starting Sunday.
func Week(tasks []model.Task, categories []model.Category, now time.Time) Snapshot {
	from := StartOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	return Calculate(tasks, categories, from, from.AddDate(0, 0, 7))
}

// Month covers the calendar month containing now.
func Month(tasks []model.Task, categories []model.Category, now time.Time) Snapshot {
	from := StartOfMonth(now)
	return Calculate(tasks, categories, from, from.AddDate(0, 1, 0))
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
