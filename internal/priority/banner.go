package priority

import (
	"sort"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
	"github.com/HungBoGo/hubogo-note/internal/stats"
)

type BannerKind string

const (
	BannerCelebration   BannerKind = "celebration"
	BannerStreakAmazing BannerKind = "streak_amazing"
	BannerStreak        BannerKind = "streak"
	BannerOverdue       BannerKind = "overdue"
	BannerDueToday      BannerKind = "due_today"
	BannerUnpaid        BannerKind = "unpaid"
	BannerExcellent     BannerKind = "excellent_rate"
	BannerNeedFocus     BannerKind = "need_focus"
)

// Banner is a predicate-triggered summary notice. Lower Priority shows
// first. The engine emits only structured data; all text belongs to the
// presentation layer.
type Banner struct {
	Kind           BannerKind `json:"kind"`
	Icon           string     `json:"icon"`
	Color          string     `json:"color"`
	Priority       int        `json:"priority"`
	Milestone      float64    `json:"milestone,omitempty"`
	Amount         float64    `json:"amount,omitempty"`
	Count          int        `json:"count,omitempty"`
	Streak         int        `json:"streak,omitempty"`
	CompletionRate int        `json:"completionRate,omitempty"`
}

// incomeMilestones are the monthly paid-income celebration thresholds,
// highest first. Only the highest reached threshold fires.
var incomeMilestones = []float64{100_000_000, 50_000_000, 20_000_000, 10_000_000, 5_000_000}

const (
	streakAmazingDays = 30
	streakNotableDays = 7
	excellentRate     = 80
	needFocusRate     = 30
)

// GenerateBanners computes every banner predicate independently over the
// full task set and a stats snapshot, then orders by ascending priority.
// Multiple banners may coexist.
func GenerateBanners(snap stats.Snapshot, tasks []model.Task, now time.Time) []Banner {
	var banners []Banner

	if b, ok := milestoneBanner(tasks, now); ok {
		banners = append(banners, b)
	}
	if b, ok := streakBanner(tasks); ok {
		banners = append(banners, b)
	}

	overdue, dueToday := 0, 0
	for _, t := range tasks {
		if t.Overdue(now) {
			overdue++
		}
		if !t.Completed() && t.DueOn(now) {
			dueToday++
		}
	}
	if overdue > 0 {
		banners = append(banners, Banner{
			Kind: BannerOverdue, Icon: "🚨", Color: "red", Priority: 2, Count: overdue,
		})
	}
	if dueToday > 0 {
		banners = append(banners, Banner{
			Kind: BannerDueToday, Icon: "⏰", Color: "orange", Priority: 2, Count: dueToday,
		})
	}

	if snap.UnpaidAmount > 0 {
		unpaidDone := 0
		for _, t := range tasks {
			if t.Amount > 0 && !t.IsPaid && t.Completed() {
				unpaidDone++
			}
		}
		if unpaidDone > 0 {
			banners = append(banners, Banner{
				Kind: BannerUnpaid, Icon: "💸", Color: "yellow", Priority: 3,
				Count: unpaidDone, Amount: snap.UnpaidAmount,
			})
		}
	}

	switch {
	case snap.CompletionRate >= excellentRate:
		banners = append(banners, Banner{
			Kind: BannerExcellent, Icon: "🏆", Color: "green", Priority: 4,
			CompletionRate: snap.CompletionRate,
		})
	case snap.CompletionRate < needFocusRate && snap.Total > 0:
		banners = append(banners, Banner{
			Kind: BannerNeedFocus, Icon: "⚡", Color: "amber", Priority: 4,
			CompletionRate: snap.CompletionRate,
		})
	}

	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Priority < banners[j].Priority
	})
	return banners
}

func milestoneBanner(tasks []model.Task, now time.Time) (Banner, bool) {
	monthStart := stats.StartOfMonth(now)

	var monthlyIncome float64
	for _, t := range tasks {
		if !t.IsPaid {
			continue
		}
		paidAt := t.UpdatedAt
		if t.CompletedAt != nil {
			paidAt = *t.CompletedAt
		}
		if !paidAt.Before(monthStart) {
			monthlyIncome += t.Amount
		}
	}

	for _, milestone := range incomeMilestones {
		if monthlyIncome >= milestone {
			return Banner{
				Kind: BannerCelebration, Icon: "🎉", Color: "green", Priority: 0,
				Milestone: milestone, Amount: monthlyIncome,
			}, true
		}
	}
	return Banner{}, false
}

func streakBanner(tasks []model.Task) (Banner, bool) {
	maxStreak := 0
	for _, t := range tasks {
		if t.IsLongTerm && t.CurrentStreak > maxStreak {
			maxStreak = t.CurrentStreak
		}
	}

	switch {
	case maxStreak >= streakAmazingDays:
		return Banner{Kind: BannerStreakAmazing, Icon: "🔥", Color: "orange", Priority: 1, Streak: maxStreak}, true
	case maxStreak >= streakNotableDays:
		return Banner{Kind: BannerStreak, Icon: "⚡", Color: "blue", Priority: 1, Streak: maxStreak}, true
	default:
		return Banner{}, false
	}
}
