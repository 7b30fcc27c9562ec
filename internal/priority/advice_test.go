package priority

import (
	"testing"

	"github.com/HungBoGo/hubogo-note/internal/model"
	"github.com/HungBoGo/hubogo-note/internal/stats"
)

func adviceByKind(advice []Advice) map[AdviceKind]Advice {
	m := make(map[AdviceKind]Advice, len(advice))
	for _, a := range advice {
		m[a.Kind] = a
	}
	return m
}

func TestGetSmartAdvice_IncomeFirst(t *testing.T) {
	tasks := []model.Task{
		{TaskType: model.TypeIncome, Amount: 2_000_000},
		{Amount: 500_000}, // untyped work with money counts as income
		{Status: model.StatusCompleted, Amount: 9_000_000},
		{TaskType: model.TypeInvestment},
	}

	advice := adviceByKind(GetSmartAdvice(tasks, stats.Snapshot{}, refTime))

	income, ok := advice[AdviceIncomeFirst]
	if !ok {
		t.Fatalf("expected income-first advice, got %v", advice)
	}
	if income.Count != 2 || income.Amount != 2_500_000 {
		t.Fatalf("income advice count/amount = %d/%v, want 2/2500000", income.Count, income.Amount)
	}
	if _, ok := advice[AdviceKeepInvesting]; !ok {
		t.Fatalf("expected keep-investing alongside pending income, got %v", advice)
	}
	if _, ok := advice[AdviceTimeToInvest]; ok {
		t.Fatalf("time-to-invest must not fire while income is pending")
	}
}

func TestGetSmartAdvice_TimeToInvest(t *testing.T) {
	tasks := []model.Task{
		{TaskType: model.TypeInvestment},
		{Status: model.StatusCompleted, Amount: 1_000_000},
	}

	advice := adviceByKind(GetSmartAdvice(tasks, stats.Snapshot{}, refTime))

	if _, ok := advice[AdviceTimeToInvest]; !ok {
		t.Fatalf("expected time-to-invest with no pending income, got %v", advice)
	}
	if _, ok := advice[AdviceIncomeFirst]; ok {
		t.Fatalf("completed income must not trigger income-first")
	}
}

func TestGetSmartAdvice_CheckinPending(t *testing.T) {
	today := refTime.Format(model.DateKeyLayout)
	tasks := []model.Task{
		{IsLongTerm: true},
		{IsLongTerm: true, DailyCheckins: []string{today}},
		{IsLongTerm: true, Status: model.StatusCompleted},
	}

	advice := adviceByKind(GetSmartAdvice(tasks, stats.Snapshot{}, refTime))

	got, ok := advice[AdviceCheckinPending]
	if !ok {
		t.Fatalf("expected checkin-pending advice, got %v", advice)
	}
	if got.Count != 1 {
		t.Fatalf("checkin-pending count = %d, want 1", got.Count)
	}
}

func TestGetSmartAdvice_Empty(t *testing.T) {
	if got := GetSmartAdvice(nil, stats.Snapshot{}, refTime); len(got) != 0 {
		t.Fatalf("expected no advice for empty workload, got %v", got)
	}
}
