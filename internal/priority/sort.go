package priority

import (
	"sort"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

// RankedTask is a task annotated with its evaluation.
type RankedTask struct {
	model.Task
	Evaluation Evaluation `json:"evaluation"`
}

// SortByPriority evaluates every task against the same reference time
// and orders the set: pending before completed, then by quadrant rank,
// then by score descending. The sort is stable so equal-score tasks keep
// their input order.
func SortByPriority(tasks []model.Task, w Weights, now time.Time) []RankedTask {
	ranked := make([]RankedTask, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, RankedTask{Task: t, Evaluation: Evaluate(t, w, now)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.Completed() != b.Completed() {
			return !a.Completed()
		}
		if a.Evaluation.QuadrantInfo.Rank != b.Evaluation.QuadrantInfo.Rank {
			return a.Evaluation.QuadrantInfo.Rank < b.Evaluation.QuadrantInfo.Rank
		}
		return a.Evaluation.Score > b.Evaluation.Score
	})

	return ranked
}

// sortPending evaluates and orders only the non-completed tasks.
func sortPending(tasks []model.Task, w Weights, now time.Time) []RankedTask {
	pending := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed() {
			pending = append(pending, t)
		}
	}
	return SortByPriority(pending, w, now)
}
