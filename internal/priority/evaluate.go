package priority

import (
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

// Evaluation is the per-task result of one engine pass. It is ephemeral:
// recomputed on every call, never written back to the task.
type Evaluation struct {
	Quadrant         Quadrant     `json:"quadrant"`
	QuadrantInfo     QuadrantInfo `json:"quadrantInfo"`
	UrgencyEffective int          `json:"urgencyEffective"`
	Score            float64      `json:"score"`
	Importance       int          `json:"importance"`
	Reasons          []Reason     `json:"reasons"`
}

// Evaluate runs the full pipeline for a single task: defaulting, urgency
// resolution, quadrant classification, scoring and explanation. It is a
// pure function of (task, weights, now).
func Evaluate(t model.Task, w Weights, now time.Time) Evaluation {
	w = w.Normalized()
	a := resolveAttributes(t)

	urgencyEffective := ResolveUrgency(now, t.Deadline, a.baseUrgency)
	quadrant := Classify(a.importance, urgencyEffective)

	return Evaluation{
		Quadrant:         quadrant,
		QuadrantInfo:     quadrant.Info(),
		UrgencyEffective: urgencyEffective,
		Score:            score(a, urgencyEffective, w),
		Importance:       a.importance,
		Reasons:          explain(t, a, quadrant, now),
	}
}
