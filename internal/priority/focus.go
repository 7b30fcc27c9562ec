package priority

import (
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

// TodayFocus buckets the highest-ranked pending tasks for the daily view.
type TodayFocus struct {
	Urgent      []RankedTask `json:"urgent"`      // Q1, at most 3
	Important   []RankedTask `json:"important"`   // Q2, at most 2
	Delegate    []RankedTask `json:"delegate"`    // Q3, at most 2
	TopPriority []RankedTask `json:"topPriority"` // top 5 overall
}

func GetTodayFocus(tasks []model.Task, w Weights, now time.Time) TodayFocus {
	sorted := sortPending(tasks, w, now)

	return TodayFocus{
		Urgent:      takeQuadrant(sorted, Q1, 3),
		Important:   takeQuadrant(sorted, Q2, 2),
		Delegate:    takeQuadrant(sorted, Q3, 2),
		TopPriority: head(sorted, 5),
	}
}

// IncomeBuckets splits money-earning work by urgency.
type IncomeBuckets struct {
	Urgent    []RankedTask `json:"urgent"`    // Q1, at most 5
	Important []RankedTask `json:"important"` // Q2, at most 3
	All       []RankedTask `json:"all"`
}

type InvestmentBuckets struct {
	All      []RankedTask `json:"all"`
	LongTerm []RankedTask `json:"longTerm"`
}

type TypeBuckets struct {
	Income     IncomeBuckets     `json:"income"`
	Investment InvestmentBuckets `json:"investment"`
}

// CategorizeByType partitions pending tasks into income work versus
// investment projects. Any type other than "investment" counts as income.
func CategorizeByType(tasks []model.Task, w Weights, now time.Time) TypeBuckets {
	sorted := sortPending(tasks, w, now)

	var income, investment []RankedTask
	for _, t := range sorted {
		if t.TaskType == model.TypeInvestment {
			investment = append(investment, t)
		} else {
			income = append(income, t)
		}
	}

	var longTerm []RankedTask
	for _, t := range investment {
		if t.IsLongTerm {
			longTerm = append(longTerm, t)
		}
	}

	return TypeBuckets{
		Income: IncomeBuckets{
			Urgent:    takeQuadrant(income, Q1, 5),
			Important: takeQuadrant(income, Q2, 3),
			All:       income,
		},
		Investment: InvestmentBuckets{
			All:      investment,
			LongTerm: longTerm,
		},
	}
}

func takeQuadrant(sorted []RankedTask, q Quadrant, limit int) []RankedTask {
	out := make([]RankedTask, 0, limit)
	for _, t := range sorted {
		if t.Evaluation.Quadrant != q {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}

func head(sorted []RankedTask, n int) []RankedTask {
	if len(sorted) < n {
		n = len(sorted)
	}
	out := make([]RankedTask, n)
	copy(out, sorted[:n])
	return out
}
