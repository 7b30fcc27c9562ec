package priority

import (
	"reflect"
	"testing"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

func intp(v int) *int { return &v }

func TestEvaluate_ExampleTask(t *testing.T) {
	tomorrow := refTime.Add(24 * time.Hour)
	task := model.Task{
		Importance: intp(3),
		Urgency:    intp(1),
		Deadline:   &tomorrow,
		Amount:     500,
	}

	ev := Evaluate(task, DefaultWeights(), refTime)

	if ev.UrgencyEffective < 3 {
		t.Fatalf("expected deadline tomorrow to force max urgency, got %d", ev.UrgencyEffective)
	}
	if ev.Quadrant != Q1 {
		t.Fatalf("expected Q1, got %s", ev.Quadrant)
	}
	if len(ev.Reasons) == 0 || ev.Reasons[0].Kind != ReasonDueIn24h {
		t.Fatalf("expected a deadline-proximity primary reason, got %+v", ev.Reasons)
	}
}

func TestEvaluate_DefaultsForMissingAttributes(t *testing.T) {
	ev := Evaluate(model.Task{}, DefaultWeights(), refTime)

	// importance and urgency default to 1 with no legacy tag, effort to 1.
	if ev.Importance != 1 {
		t.Fatalf("expected default importance 1, got %d", ev.Importance)
	}
	if ev.Quadrant != Q4 {
		t.Fatalf("expected Q4 for an all-default task, got %s", ev.Quadrant)
	}
	// urgency*1 + effort*1 with default weights.
	want := DefaultWeights().Urgency + DefaultWeights().Effort
	if ev.Score != want {
		t.Fatalf("expected score %v, got %v", want, ev.Score)
	}
}

func TestEvaluate_CashNowDefaultsFromAmount(t *testing.T) {
	paid := Evaluate(model.Task{Amount: 100}, DefaultWeights(), refTime)
	unpaid := Evaluate(model.Task{}, DefaultWeights(), refTime)

	diff := paid.Score - unpaid.Score
	if diff != DefaultWeights().CashNow*2 {
		t.Fatalf("expected amount>0 to default cashNow to 2 (score diff %v), got diff %v",
			DefaultWeights().CashNow*2, diff)
	}
}

func TestEvaluate_LegacyPriorityFallback(t *testing.T) {
	cases := []struct {
		tag        model.LegacyPriority
		importance int
	}{
		{model.PriorityVeryUrgent, 3},
		{model.PriorityUrgent, 2},
		{model.PriorityNormal, 1},
		{model.PriorityLow, 0},
		{"", 1},
		{"bogus", 1},
	}
	for _, tc := range cases {
		ev := Evaluate(model.Task{Priority: tc.tag}, DefaultWeights(), refTime)
		if ev.Importance != tc.importance {
			t.Fatalf("tag %q: expected importance %d, got %d", tc.tag, tc.importance, ev.Importance)
		}
	}

	// Explicit numeric fields beat the tag.
	ev := Evaluate(model.Task{Priority: model.PriorityVeryUrgent, Importance: intp(0)}, DefaultWeights(), refTime)
	if ev.Importance != 0 {
		t.Fatalf("expected numeric importance to win over tag, got %d", ev.Importance)
	}
}

func TestEvaluate_ScoreLinearInWeights(t *testing.T) {
	task := model.Task{
		Importance: intp(2),
		Urgency:    intp(2),
		Strategic:  intp(3),
		CashNow:    intp(1),
		Upside:     intp(2),
		Effort:     intp(3),
		Risk:       intp(2),
	}

	w := Weights{Strategic: 1, CashNow: 2, Upside: 3, Urgency: 4, Effort: 5, Risk: 6}
	doubled := Weights{Strategic: 2, CashNow: 4, Upside: 6, Urgency: 8, Effort: 10, Risk: 12}

	a := Evaluate(task, w, refTime).Score
	b := Evaluate(task, doubled, refTime).Score
	if b != 2*a {
		t.Fatalf("expected doubling weights to double score: %v vs %v", a, b)
	}
}

func TestEvaluate_RiskSubtracts(t *testing.T) {
	base := Evaluate(model.Task{Risk: intp(0)}, DefaultWeights(), refTime)
	risky := Evaluate(model.Task{Risk: intp(3)}, DefaultWeights(), refTime)
	if risky.Score >= base.Score {
		t.Fatalf("expected risk to lower score: %v vs %v", risky.Score, base.Score)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	deadline := refTime.Add(50 * time.Hour)
	task := model.Task{
		Importance: intp(3),
		Urgency:    intp(2),
		CashNow:    intp(2),
		Effort:     intp(2),
		Risk:       intp(2),
		Deadline:   &deadline,
		Amount:     1200,
	}

	a := Evaluate(task, DefaultWeights(), refTime)
	b := Evaluate(task, DefaultWeights(), refTime)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical evaluations, got %+v vs %+v", a, b)
	}
}
