package priority

import (
	"testing"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

func reasonsFor(t *testing.T, task model.Task) []Reason {
	t.Helper()
	return Evaluate(task, DefaultWeights(), refTime).Reasons
}

func TestExplain_QuadrantPrimaryReason(t *testing.T) {
	cases := []struct {
		name string
		task model.Task
		want ReasonKind
	}{
		{"q1 no deadline", model.Task{Importance: intp(3), Urgency: intp(3)}, ReasonDoNow},
		{"q2", model.Task{Importance: intp(3), Urgency: intp(0)}, ReasonSchedule},
		{"q3", model.Task{Importance: intp(0), Urgency: intp(3)}, ReasonDelegate},
		{"q4", model.Task{Importance: intp(0), Urgency: intp(0)}, ReasonWhenFree},
	}
	for _, tc := range cases {
		rs := reasonsFor(t, tc.task)
		if len(rs) == 0 || rs[0].Kind != tc.want {
			t.Fatalf("%s: expected primary reason %s, got %+v", tc.name, tc.want, rs)
		}
	}
}

func TestExplain_DeadlineProximity(t *testing.T) {
	overdue := refTime.Add(-24 * time.Hour)
	in3days := refTime.Add(60 * time.Hour)

	rs := reasonsFor(t, model.Task{Importance: intp(3), Deadline: &overdue})
	if rs[0].Kind != ReasonOverdue {
		t.Fatalf("expected overdue reason, got %+v", rs[0])
	}

	rs = reasonsFor(t, model.Task{Importance: intp(3), Deadline: &in3days})
	if rs[0].Kind != ReasonDueSoon {
		t.Fatalf("expected due-soon reason, got %+v", rs[0])
	}
	if rs[0].DaysLeft != 3 {
		t.Fatalf("expected 3 days left, got %d", rs[0].DaysLeft)
	}
}

func TestExplain_AttributeHighlightsInOrder(t *testing.T) {
	task := model.Task{
		Importance: intp(0),
		Urgency:    intp(0),
		CashNow:    intp(2),
		Effort:     intp(3),
		Risk:       intp(2),
	}

	rs := reasonsFor(t, task)
	want := []ReasonKind{ReasonWhenFree, ReasonCashSoon, ReasonQuickWin, ReasonRiskWarning}
	if len(rs) != len(want) {
		t.Fatalf("expected %d reasons, got %+v", len(want), rs)
	}
	for i, kind := range want {
		if rs[i].Kind != kind {
			t.Fatalf("reason %d: expected %s, got %s", i, kind, rs[i].Kind)
		}
	}
}

func TestExplain_IconsAlwaysSet(t *testing.T) {
	task := model.Task{Importance: intp(3), Urgency: intp(3), CashNow: intp(2), Risk: intp(2)}
	for _, r := range reasonsFor(t, task) {
		if r.Icon == "" {
			t.Fatalf("reason %s has no icon", r.Kind)
		}
	}
}
