package model

import (
	"time"
)

type TaskID string

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type TaskType string

const (
	TypeIncome     TaskType = "income"
	TypeInvestment TaskType = "investment"
)

// LegacyPriority is the old three-level priority tag. It survives in
// stored data and feeds the attribute fallback chain; new code sets the
// numeric importance/urgency fields instead.
type LegacyPriority string

const (
	PriorityLow        LegacyPriority = "low"
	PriorityNormal     LegacyPriority = "normal"
	PriorityUrgent     LegacyPriority = "urgent"
	PriorityVeryUrgent LegacyPriority = "very-urgent"
)

// DateKeyLayout is the calendar-day key used for daily check-ins.
const DateKeyLayout = "2006-01-02"

type Task struct {
	ID          TaskID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Status      Status   `json:"status"`
	TaskType    TaskType `json:"taskType"`

	Priority         LegacyPriority `json:"priority,omitempty"`
	OriginalPriority LegacyPriority `json:"originalPriority,omitempty"`
	AutoUpgraded     bool           `json:"autoUpgraded,omitempty"`

	// Scoring attributes, 0-3 scale. nil means "not set"; the priority
	// engine substitutes documented defaults at evaluation time.
	Importance *int `json:"importance,omitempty"`
	Urgency    *int `json:"urgency,omitempty"`
	Strategic  *int `json:"strategic,omitempty"`
	CashNow    *int `json:"cashNow,omitempty"`
	Upside     *int `json:"upside,omitempty"`
	Effort     *int `json:"effort,omitempty"`
	Risk       *int `json:"risk,omitempty"`

	Amount float64 `json:"amount"`
	IsPaid bool    `json:"isPaid"`

	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	IsLongTerm    bool     `json:"isLongTerm,omitempty"`
	DailyCheckins []string `json:"dailyCheckins,omitempty"`
	CurrentStreak int      `json:"currentStreak,omitempty"`
	LongestStreak int      `json:"longestStreak,omitempty"`
}

// Completed reports whether the task is done. Any status other than
// "completed" counts as pending.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

func (t Task) Overdue(now time.Time) bool {
	if t.Deadline == nil || t.Completed() {
		return false
	}
	return t.Deadline.Before(now)
}

// DueOn reports whether the deadline falls on the same calendar day as now.
func (t Task) DueOn(now time.Time) bool {
	if t.Deadline == nil {
		return false
	}
	return t.Deadline.Format(DateKeyLayout) == now.Format(DateKeyLayout)
}

func (t Task) CheckedInOn(day string) bool {
	for _, d := range t.DailyCheckins {
		if d == day {
			return true
		}
	}
	return false
}
