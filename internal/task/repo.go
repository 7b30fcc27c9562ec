package task

import (
	"errors"
	"strings"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

var ErrNotFound = errors.New("task not found")

// Patch represents a partial update. nil pointer => "no change".
// For Deadline, a pointer to the zero time clears the deadline.
type Patch struct {
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	CategoryID  *string               `json:"categoryId,omitempty"`
	Status      *model.Status         `json:"status,omitempty"`
	TaskType    *model.TaskType       `json:"taskType,omitempty"`
	Priority    *model.LegacyPriority `json:"priority,omitempty"`

	OriginalPriority *model.LegacyPriority `json:"originalPriority,omitempty"`
	AutoUpgraded     *bool                 `json:"autoUpgraded,omitempty"`

	Importance *int `json:"importance,omitempty"`
	Urgency    *int `json:"urgency,omitempty"`
	Strategic  *int `json:"strategic,omitempty"`
	CashNow    *int `json:"cashNow,omitempty"`
	Upside     *int `json:"upside,omitempty"`
	Effort     *int `json:"effort,omitempty"`
	Risk       *int `json:"risk,omitempty"`

	Amount *float64 `json:"amount,omitempty"`
	IsPaid *bool    `json:"isPaid,omitempty"`

	Deadline *time.Time `json:"deadline,omitempty"`

	IsLongTerm    *bool     `json:"isLongTerm,omitempty"`
	DailyCheckins *[]string `json:"dailyCheckins,omitempty"`
	CurrentStreak *int      `json:"currentStreak,omitempty"`
	LongestStreak *int      `json:"longestStreak,omitempty"`
}

type ListFilter struct {
	// Status: "" | "all" | "pending" | "completed" | "overdue" | "due_today"
	Status string

	// CategoryID: "" means any.
	CategoryID string

	// Type: "" | "income" | "investment"
	Type string

	// LongTerm: nil = don't care.
	LongTerm *bool
}

type Repo interface {
	Create(t model.Task) (model.Task, error)
	Get(id model.TaskID) (model.Task, error)
	Update(id model.TaskID, patch Patch) (model.Task, error)
	Delete(id model.TaskID) error
	List(filter ListFilter) ([]model.Task, error)
}

func applyPatch(t *model.Task, p Patch, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Status != nil {
		setStatus(t, *p.Status, now)
	}
	if p.TaskType != nil {
		t.TaskType = *p.TaskType
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.OriginalPriority != nil {
		t.OriginalPriority = *p.OriginalPriority
	}
	if p.AutoUpgraded != nil {
		t.AutoUpgraded = *p.AutoUpgraded
	}

	if p.Importance != nil {
		t.Importance = p.Importance
	}
	if p.Urgency != nil {
		t.Urgency = p.Urgency
	}
	if p.Strategic != nil {
		t.Strategic = p.Strategic
	}
	if p.CashNow != nil {
		t.CashNow = p.CashNow
	}
	if p.Upside != nil {
		t.Upside = p.Upside
	}
	if p.Effort != nil {
		t.Effort = p.Effort
	}
	if p.Risk != nil {
		t.Risk = p.Risk
	}

	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.IsPaid != nil {
		t.IsPaid = *p.IsPaid
	}

	// pointer time field with "zero clears" semantics
	if p.Deadline != nil {
		if p.Deadline.IsZero() {
			t.Deadline = nil
		} else {
			t.Deadline = p.Deadline
		}
	}

	if p.IsLongTerm != nil {
		t.IsLongTerm = *p.IsLongTerm
	}
	if p.DailyCheckins != nil {
		if *p.DailyCheckins == nil {
			t.DailyCheckins = []string{}
		} else {
			t.DailyCheckins = *p.DailyCheckins
		}
	}
	if p.CurrentStreak != nil {
		t.CurrentStreak = *p.CurrentStreak
	}
	if p.LongestStreak != nil {
		t.LongestStreak = *p.LongestStreak
	}
}

func setStatus(t *model.Task, status model.Status, now time.Time) {
	t.Status = status
	if status == model.StatusCompleted {
		if t.CompletedAt == nil {
			at := now
			t.CompletedAt = &at
		}
	} else {
		t.CompletedAt = nil
	}
}

func matchesFilter(t model.Task, f ListFilter, now time.Time) bool {
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(f.Type)) {
	case "", "all", "any":
	case string(model.TypeInvestment):
		if t.TaskType != model.TypeInvestment {
			return false
		}
	case string(model.TypeIncome):
		if t.TaskType == model.TypeInvestment {
			return false
		}
	default:
		return false
	}

	if f.LongTerm != nil && t.IsLongTerm != *f.LongTerm {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(f.Status)) {
	case "", "all":
		return true
	case "pending":
		return !t.Completed()
	case "completed":
		return t.Completed()
	case "overdue":
		return t.Overdue(now)
	case "due_today":
		return !t.Completed() && t.DueOn(now)
	default:
		return true
	}
}
