package priority

import (
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
	"github.com/HungBoGo/hubogo-note/internal/stats"
)

type AdviceKind string

const (
	AdviceIncomeFirst    AdviceKind = "income_first"
	AdviceTimeToInvest   AdviceKind = "time_to_invest"
	AdviceKeepInvesting  AdviceKind = "keep_investing"
	AdviceCheckinPending AdviceKind = "checkin_pending"
)

// Advice is a predicate-driven suggestion. As with banners the engine
// produces kind plus numeric data; wording is the caller's problem.
type Advice struct {
	Kind   AdviceKind `json:"kind"`
	Icon   string     `json:"icon"`
	Count  int        `json:"count,omitempty"`
	Amount float64    `json:"amount,omitempty"`
}

// GetSmartAdvice inspects the pending workload and suggests what to pick
// up next. The snapshot gives callers a consistent stats context for the
// same pass; the predicates themselves run over the task set.
func GetSmartAdvice(tasks []model.Task, snap stats.Snapshot, now time.Time) []Advice {
	today := now.Format(model.DateKeyLayout)

	var pendingIncome, pendingInvestment, uncheckedLongTerm int
	var pendingIncomeAmount float64
	for _, t := range tasks {
		if t.Completed() {
			continue
		}
		if t.TaskType == model.TypeInvestment {
			pendingInvestment++
		} else if t.Amount > 0 {
			pendingIncome++
			pendingIncomeAmount += t.Amount
		}
		if t.IsLongTerm && !t.CheckedInOn(today) {
			uncheckedLongTerm++
		}
	}

	var advice []Advice

	if pendingIncome > 0 {
		advice = append(advice, Advice{
			Kind: AdviceIncomeFirst, Icon: "💰",
			Count: pendingIncome, Amount: pendingIncomeAmount,
		})
	}

	if pendingInvestment > 0 {
		if pendingIncome == 0 {
			advice = append(advice, Advice{Kind: AdviceTimeToInvest, Icon: "🚀"})
		} else {
			advice = append(advice, Advice{
				Kind: AdviceKeepInvesting, Icon: "📅", Count: pendingInvestment,
			})
		}
	}

	if uncheckedLongTerm > 0 {
		advice = append(advice, Advice{
			Kind: AdviceCheckinPending, Icon: "🎯", Count: uncheckedLongTerm,
		})
	}

	return advice
}
