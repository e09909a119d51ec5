// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	SecondsInAMinute = 60
	SecondsInAnHour  = 3600
	DaysInAWeek      = 7
	// WeeksInAMonth is the average number of weeks in a month.
	WeeksInAMonth = 4.333
	MonthsInAYear = 12
	HoursInAWeek  = DaysInAWeek * 24
)

// Week is the fixed length of a week bucket. It does not stretch or shrink
// across daylight saving transitions.
const Week = DaysInAWeek * 24 * time.Hour

var errEmptyTime = errors.New("time value must not be empty")

// WholeSeconds converts d to whole seconds, discarding any sub-second
// remainder. Negative durations yield zero.
func WholeSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(d / time.Second)
}

// StartOfDay returns midnight of the calendar day t falls on in loc. All
// day-level bucketing goes through this function.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}

	t = t.In(loc)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WeeksBetween returns the fractional number of weeks from a to b.
func WeeksBetween(a, b time.Time) float64 {
	return float64(b.Sub(a)) / float64(Week)
}

// WeeksAgo returns the instant n weeks before t.
func WeeksAgo(t time.Time, n int) time.Time {
	return t.Add(-time.Duration(n) * Week)
}

// KeyLayout is RFC3339 with a fixed nanosecond width so that keys sort in
// chronological order.
const KeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(KeyLayout))
}

// FromStr parses a natural language or absolute time expression such as
// "2 hours ago" or "2024-03-04 18:00" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyTime
	}

	if s == "now" {
		return now, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q: %w", s, err)
	}

	return dt.Time, nil
}

// FormattedTime renders seconds as H:MM:SS when at least an hour has elapsed,
// and M:SS otherwise.
func FormattedTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / SecondsInAnHour
	m := (seconds % SecondsInAnHour) / SecondsInAMinute
	s := seconds % SecondsInAMinute

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

// FormattedShortTime renders seconds compactly, e.g. "<1m", "45m", "2h" or
// "1h 30m".
func FormattedShortTime(seconds int) string {
	if seconds < SecondsInAMinute {
		return "<1m"
	}

	if seconds < SecondsInAnHour {
		return fmt.Sprintf("%dm", seconds/SecondsInAMinute)
	}

	h := seconds / SecondsInAnHour
	m := (seconds % SecondsInAnHour) / SecondsInAMinute

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}
