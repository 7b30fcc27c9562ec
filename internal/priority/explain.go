package priority

import (
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

type ReasonKind string

const (
	ReasonOverdue     ReasonKind = "overdue"
	ReasonDueIn24h    ReasonKind = "due_within_24h"
	ReasonDueSoon     ReasonKind = "due_soon"
	ReasonDoNow       ReasonKind = "do_now"
	ReasonSchedule    ReasonKind = "schedule"
	ReasonDelegate    ReasonKind = "delegate"
	ReasonWhenFree    ReasonKind = "when_free"
	ReasonCashSoon    ReasonKind = "cash_soon"
	ReasonQuickWin    ReasonKind = "quick_win"
	ReasonRiskWarning ReasonKind = "risk_warning"
)

// Reason is one justification tag for a task's placement. Kind doubles
// as the presentation layer's template key; DaysLeft is only set for
// deadline-proximity reasons.
type Reason struct {
	Kind     ReasonKind `json:"kind"`
	Icon     string     `json:"icon"`
	DaysLeft int        `json:"daysLeft,omitempty"`
}

var reasonIcons = map[ReasonKind]string{
	ReasonOverdue:     "⚠️",
	ReasonDueIn24h:    "🔥",
	ReasonDueSoon:     "⏰",
	ReasonDoNow:       "📌",
	ReasonSchedule:    "📅",
	ReasonDelegate:    "🔄",
	ReasonWhenFree:    "📋",
	ReasonCashSoon:    "💰",
	ReasonQuickWin:    "⚡",
	ReasonRiskWarning: "⚠️",
}

func reason(kind ReasonKind) Reason {
	return Reason{Kind: kind, Icon: reasonIcons[kind]}
}

const (
	cashSoonThreshold = 2
	quickWinThreshold = 2
	riskThreshold     = 2
)

// explain builds the ordered justification list: one quadrant-driven
// primary reason, then attribute highlights. Callers typically render
// only the first two or three.
func explain(t model.Task, a attributes, quadrant Quadrant, now time.Time) []Reason {
	reasons := make([]Reason, 0, 4)

	switch quadrant {
	case Q1:
		reasons = append(reasons, q1Reason(t, now))
	case Q2:
		reasons = append(reasons, reason(ReasonSchedule))
	case Q3:
		reasons = append(reasons, reason(ReasonDelegate))
	default:
		reasons = append(reasons, reason(ReasonWhenFree))
	}

	if a.cashNow >= cashSoonThreshold {
		reasons = append(reasons, reason(ReasonCashSoon))
	}
	if a.effort >= quickWinThreshold {
		reasons = append(reasons, reason(ReasonQuickWin))
	}
	if a.risk >= riskThreshold {
		reasons = append(reasons, reason(ReasonRiskWarning))
	}

	return reasons
}

func q1Reason(t model.Task, now time.Time) Reason {
	if t.Deadline == nil {
		return reason(ReasonDoNow)
	}

	switch days := DaysUntil(now, *t.Deadline); {
	case days <= 0:
		return reason(ReasonOverdue)
	case days <= 1:
		return reason(ReasonDueIn24h)
	case days <= 3:
		r := reason(ReasonDueSoon)
		r.DaysLeft = days
		return r
	default:
		return reason(ReasonDoNow)
	}
}
