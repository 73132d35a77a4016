package protocol

import "time"

// Clock supplies "today" to decoders that anchor relative day offsets
// (sleep sessions, oxygen samples) to a calendar date. Decoders never call
// time.Now directly, so tests can fix the anchor date and get a
// reproducible result regardless of when they run.
type Clock interface {
	// Today returns the current date at midnight in the clock's location.
	Today() time.Time
}

// SystemClock is the Clock a production caller uses: today's date at
// midnight in a fixed location.
type SystemClock struct {
	Location *time.Location
}

// Today implements Clock.
func (c SystemClock) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// FixedClock is a Clock that always returns the same date, for tests.
type FixedClock time.Time

// Today implements Clock.
func (c FixedClock) Today() time.Time {
	t := time.Time(c)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
