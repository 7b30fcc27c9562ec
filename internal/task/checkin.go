package task

import (
	"sort"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

type CheckinResult struct {
	Counted       bool
	CurrentStreak int
	LongestStreak int
}

// BuildCheckinUpdate computes the daily check-in for a long-term task.
// It is idempotent per task per calendar day: a second check-in on the
// same day produces no patch. Streaks are recomputed from the full
// check-in history rather than trusting the stored counters.
func BuildCheckinUpdate(cur model.Task, now time.Time) (Patch, CheckinResult) {
	today := now.Format(model.DateKeyLayout)

	if cur.CheckedInOn(today) {
		return Patch{}, CheckinResult{
			Counted:       false,
			CurrentStreak: cur.CurrentStreak,
			LongestStreak: cur.LongestStreak,
		}
	}

	checkins := make([]string, 0, len(cur.DailyCheckins)+1)
	checkins = append(checkins, cur.DailyCheckins...)
	checkins = append(checkins, today)
	sort.Strings(checkins)

	current := currentStreak(checkins)
	longest := max(cur.LongestStreak, longestRun(checkins))

	return Patch{
			DailyCheckins: &checkins,
			CurrentStreak: &current,
			LongestStreak: &longest,
		}, CheckinResult{
			Counted:       true,
			CurrentStreak: current,
			LongestStreak: longest,
		}
}

// RecordDailyCheckin is the pure value-level form: it returns the task
// with the check-in applied, and whether anything changed. Persistence
// is the caller's job.
func RecordDailyCheckin(t model.Task, now time.Time) (model.Task, bool) {
	patch, res := BuildCheckinUpdate(t, now)
	if !res.Counted {
		return t, false
	}
	applyPatch(&t, patch, now)
	return t, true
}

// UncheckedLongTerm returns the pending long-term tasks with no check-in
// recorded for today.
func UncheckedLongTerm(tasks []model.Task, now time.Time) []model.Task {
	today := now.Format(model.DateKeyLayout)

	out := []model.Task{}
	for _, t := range tasks {
		if t.IsLongTerm && !t.Completed() && !t.CheckedInOn(today) {
			out = append(out, t)
		}
	}
	return out
}

// currentStreak counts consecutive calendar days ending at the most
// recent check-in. Keys must be sorted ascending.
func currentStreak(sortedKeys []string) int {
	if len(sortedKeys) == 0 {
		return 0
	}

	streak := 1
	for i := len(sortedKeys) - 1; i > 0; i-- {
		if !consecutiveDays(sortedKeys[i-1], sortedKeys[i]) {
			break
		}
		streak++
	}
	return streak
}

// longestRun finds the longest run of consecutive calendar days anywhere
// in the history. Keys must be sorted ascending.
func longestRun(sortedKeys []string) int {
	if len(sortedKeys) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(sortedKeys); i++ {
		if consecutiveDays(sortedKeys[i-1], sortedKeys[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func consecutiveDays(earlier, later string) bool {
	a, errA := time.Parse(model.DateKeyLayout, earlier)
	b, errB := time.Parse(model.DateKeyLayout, later)
	if errA != nil || errB != nil {
		return false
	}
	return a.AddDate(0, 0, 1).Equal(b)
}
