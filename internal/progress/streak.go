package progress

import "time"

// Streak tracks consecutive-day habit completion. Comparison is by
// calendar day: a completion the day after the last one extends the
// streak, the same day changes nothing, and any gap longer than one
// day resets to 1. Longest is a high-water mark and never decreases.
type Streak struct {
	Current int
	Longest int
	// LastDay is the date (midnight UTC) of the most recent completion.
	// Zero when nothing has been completed yet.
	LastDay time.Time
}

// dateOf truncates a timestamp to its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Complete records a habit completion at the given time and returns
// the streak length after the update.
func (s *Streak) Complete(at time.Time) int {
	day := dateOf(at)

	switch {
	case s.LastDay.IsZero():
		s.Current = 1
	case day.Equal(s.LastDay):
		// Second completion the same day; nothing changes.
		return s.Current
	case day.Equal(s.LastDay.AddDate(0, 0, 1)):
		s.Current++
	case day.Before(s.LastDay):
		// Clock went backwards; treat as a same-day no-op.
		return s.Current
	default:
		s.Current = 1
	}

	s.LastDay = day
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return s.Current
}

// Broken reports whether the streak has lapsed as of the given time:
// more than one full day has passed since the last completion.
func (s *Streak) Broken(now time.Time) bool {
	if s.LastDay.IsZero() || s.Current == 0 {
		return false
	}
	return dateOf(now).After(s.LastDay.AddDate(0, 0, 1))
}
