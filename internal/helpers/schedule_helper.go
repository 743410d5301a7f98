package helpers

import "time"

const (
	ClockLayout    = "15:04"
	ShowTimeLayout = "2006-01-02 15:04:05"
)

// ParseClock parses an HH:MM availability bound. An empty string means the
// bound is not set.
func ParseClock(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ParseShowTime(s string) (time.Time, error) {
	return time.Parse(ShowTimeLayout, s)
}

// WithinAvailability reports whether start falls inside the artist's daily
// availability window. Only the time of day is compared and both bounds are
// inclusive; a nil bound is unbounded on that side. A window whose start is
// later than its end matches nothing in between.
func WithinAvailability(start time.Time, from, to *time.Time) bool {
	s := secondOfDay(start)
	if from != nil && s < secondOfDay(*from) {
		return false
	}
	if to != nil && s > secondOfDay(*to) {
		return false
	}
	return true
}

func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
