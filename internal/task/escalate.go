package task

import (
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
	"github.com/HungBoGo/hubogo-note/internal/priority"
)

// EscalateUnattended applies the escalation policy to every pending task
// and persists the upgrades. It returns the tasks that changed. This is
// the deliberate sweep entry point; nothing escalates implicitly.
func EscalateUnattended(repo Repo, policy priority.EscalationPolicy, now time.Time) ([]model.Task, error) {
	tasks, err := repo.List(ListFilter{Status: "pending"})
	if err != nil {
		return nil, err
	}

	upgraded := []model.Task{}
	for _, t := range tasks {
		next, changed := priority.MaybeEscalate(t, now, policy)
		if !changed {
			continue
		}

		auto := true
		updated, err := repo.Update(t.ID, Patch{
			Priority:         &next.Priority,
			OriginalPriority: &next.OriginalPriority,
			AutoUpgraded:     &auto,
		})
		if err != nil {
			return upgraded, err
		}
		upgraded = append(upgraded, updated)
	}
	return upgraded, nil
}
