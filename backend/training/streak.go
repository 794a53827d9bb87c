package training

import (
	"sort"
	"time"
)

// StreakResult is the outcome of a full streak recomputation.
type StreakResult struct {
	CurrentStreak int
	LongestStreak int
	// MostRecent is the latest distinct activity date (UTC midnight), nil
	// when there are no completions. Callers persist it as last_activity_date.
	MostRecent *time.Time
}

// Day boundaries are UTC calendar days throughout. Timestamps are truncated
// to their UTC date before any comparison.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(DateOnly(later).Sub(DateOnly(earlier)).Hours() / 24)
}

// RecalculateStreak derives the current and longest consecutive-day streaks
// from the complete completion history. It is the source of truth: running it
// after any sequence of AdvanceStreak updates yields the same values, so it
// doubles as the repair operation after manual data edits.
//
// The current streak is zero unless the most recent activity date is today or
// yesterday; from there it walks backwards counting exact one-day gaps. The
// longest streak is the longest run of consecutive dates anywhere in history.
func RecalculateStreak(completions []time.Time, today time.Time) StreakResult {
	seen := make(map[time.Time]bool, len(completions))
	dates := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		d := DateOnly(c)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return StreakResult{}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	mostRecent := dates[len(dates)-1]
	current := 0
	if gap := daysBetween(mostRecent, today); gap == 0 || gap == 1 {
		current = 1
		for i := len(dates) - 2; i >= 0; i-- {
			if daysBetween(dates[i], dates[i+1]) != 1 {
				break
			}
			current++
		}
	}

	return StreakResult{CurrentStreak: current, LongestStreak: longest, MostRecent: &mostRecent}
}

// AdvanceStreak applies a single new activity day to the stored streak state
// without rescanning history. A second completion on the same day is a no-op,
// activity the day after the last extends the streak, anything else resets it
// to 1. Returns the new current streak, longest streak and activity date.
func AdvanceStreak(current, longest int, lastActivity *time.Time, today time.Time) (int, int, time.Time) {
	day := DateOnly(today)
	next := 1
	if lastActivity != nil {
		switch daysBetween(*lastActivity, day) {
		case 0:
			next = current
		case 1:
			next = current + 1
		}
	}
	if next > longest {
		longest = next
	}
	return next, longest, day
}
