package priority

import (
	"testing"
	"time"
)

var refTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func deadlineIn(d time.Duration) *time.Time {
	t := refTime.Add(d)
	return &t
}

func TestResolveUrgency_NoDeadline(t *testing.T) {
	for base := 0; base <= 3; base++ {
		if got := ResolveUrgency(refTime, nil, base); got != base {
			t.Fatalf("base %d: expected unchanged, got %d", base, got)
		}
	}
}

func TestResolveUrgency_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		base int
		want int
	}{
		{"overdue forces max", -48 * time.Hour, 0, 3},
		{"exactly now counts as overdue", 0, 0, 3},
		{"within 24h", 24 * time.Hour, 0, 3},
		{"within 7 days", 6 * 24 * time.Hour, 0, 2},
		{"within 30 days", 20 * 24 * time.Hour, 0, 1},
		{"far future leaves base", 60 * 24 * time.Hour, 0, 0},
		{"deadline never lowers base", 20 * 24 * time.Hour, 3, 3},
	}

	for _, tc := range cases {
		if got := ResolveUrgency(refTime, deadlineIn(tc.in), tc.base); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestResolveUrgency_MonotonicInDeadline(t *testing.T) {
	// An earlier deadline must never yield lower urgency than a later one.
	horizons := []time.Duration{
		-72 * time.Hour, 0, 12 * time.Hour, 36 * time.Hour,
		5 * 24 * time.Hour, 12 * 24 * time.Hour, 45 * 24 * time.Hour,
	}

	for base := 0; base <= 3; base++ {
		for i := 0; i < len(horizons)-1; i++ {
			earlier := ResolveUrgency(refTime, deadlineIn(horizons[i]), base)
			later := ResolveUrgency(refTime, deadlineIn(horizons[i+1]), base)
			if earlier < later {
				t.Fatalf("base %d: urgency %d for %v < urgency %d for %v",
					base, earlier, horizons[i], later, horizons[i+1])
			}
		}
	}
}
