package priority

import (
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

// EscalationPolicy controls how long a task may sit unattended before
// its legacy priority tag is pushed up.
type EscalationPolicy struct {
	UrgentAfterDays     int // normal -> urgent
	VeryUrgentAfterDays int // normal -> very-urgent, urgent -> very-urgent uses UrgentAfterDays
}

func DefaultEscalationPolicy() EscalationPolicy {
	return EscalationPolicy{
		UrgentAfterDays:     3,
		VeryUrgentAfterDays: 5,
	}
}

// MaybeEscalate returns a copy of the task with its priority tag raised
// when it has sat unattended past the policy thresholds, measured in
// whole days since creation against the original tag. The second return
// reports whether anything changed. Callers run this deliberately (a
// periodic sweep); it is never a side effect of reading a task.
func MaybeEscalate(t model.Task, now time.Time, policy EscalationPolicy) (model.Task, bool) {
	if t.Completed() {
		return t, false
	}

	original := t.OriginalPriority
	if original == "" {
		original = t.Priority
	}
	if original == "" {
		original = model.PriorityNormal
	}

	days := int(now.Sub(t.CreatedAt).Hours() / 24)

	next := original
	switch original {
	case model.PriorityNormal:
		if days >= policy.VeryUrgentAfterDays {
			next = model.PriorityVeryUrgent
		} else if days >= policy.UrgentAfterDays {
			next = model.PriorityUrgent
		}
	case model.PriorityUrgent:
		if days >= policy.UrgentAfterDays {
			next = model.PriorityVeryUrgent
		}
	}

	// No threshold crossed. Bail before comparing against the stored
	// tag, which may be empty for tasks created with numeric attributes.
	if next == original {
		return t, false
	}
	if next == t.Priority {
		return t, false
	}

	t.Priority = next
	t.OriginalPriority = original
	t.AutoUpgraded = true
	return t, true
}
