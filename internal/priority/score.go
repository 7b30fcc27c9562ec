package priority

import (
	"github.com/HungBoGo/hubogo-note/internal/model"
)

// attributes is a task's scoring input after defaulting. It never leaves
// the package; callers see the resolved values inside Evaluation.
type attributes struct {
	importance  int
	baseUrgency int
	strategic   int
	cashNow     int
	upside      int
	effort      int
	risk        int
}

// resolveAttributes applies the documented defaults for missing fields.
// Importance and base urgency fall back to the legacy priority tag when
// the numeric fields are absent.
func resolveAttributes(t model.Task) attributes {
	legacy := MapLegacyPriority(t.Priority)

	cashNowDefault := 0
	if t.Amount > 0 {
		cashNowDefault = 2
	}

	return attributes{
		importance:  valueOr(t.Importance, legacy),
		baseUrgency: valueOr(t.Urgency, legacy),
		strategic:   valueOr(t.Strategic, 0),
		cashNow:     valueOr(t.CashNow, cashNowDefault),
		upside:      valueOr(t.Upside, 0),
		effort:      valueOr(t.Effort, 1),
		risk:        valueOr(t.Risk, 0),
	}
}

func valueOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// MapLegacyPriority is the canonical migration mapping from the old
// three-level tag to an importance/urgency level. Unknown or empty tags
// map to 1 (normal).
func MapLegacyPriority(p model.LegacyPriority) int {
	switch p {
	case model.PriorityVeryUrgent:
		return 3
	case model.PriorityUrgent:
		return 2
	case model.PriorityNormal:
		return 1
	case model.PriorityLow:
		return 0
	default:
		return 1
	}
}

// score is the weighted linear sum over the resolved attributes. Risk is
// the only subtractive term. The result is unbounded and only meaningful
// for ordering within a quadrant.
func score(a attributes, urgencyEffective int, w Weights) float64 {
	return w.Strategic*float64(a.strategic) +
		w.CashNow*float64(a.cashNow) +
		w.Upside*float64(a.upside) +
		w.Urgency*float64(urgencyEffective) +
		w.Effort*float64(a.effort) -
		w.Risk*float64(a.risk)
}
