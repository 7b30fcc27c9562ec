package priority

import (
	"math"
	"time"
)

// MaxUrgency is the top of the 0-3 urgency scale.
const MaxUrgency = 3

// DaysUntil returns the whole-day distance from now to deadline,
// rounding partial days up. Zero or negative means the deadline is
// today-or-earlier.
func DaysUntil(now, deadline time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// ResolveUrgency derives the effective urgency from a base urgency and
// an optional deadline. A deadline can only raise urgency, never lower
// it. A deadline that is due today or already passed forces maximum
// urgency regardless of the base.
func ResolveUrgency(now time.Time, deadline *time.Time, baseUrgency int) int {
	if deadline == nil {
		return baseUrgency
	}

	switch days := DaysUntil(now, *deadline); {
	case days <= 0:
		return MaxUrgency
	case days <= 1:
		return max(baseUrgency, 3)
	case days <= 7:
		return max(baseUrgency, 2)
	case days <= 30:
		return max(baseUrgency, 1)
	default:
		return baseUrgency
	}
}
