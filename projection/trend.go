package projection

import (
	"time"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
)

// Trend is the direction of the practice pace.
type Trend int

const (
	Unknown Trend = iota
	Decreasing
	Steady
	Increasing
)

const (
	recentWeeks     = 2
	historicalWeeks = 6
	trendThreshold  = 0.15
)

var trendNames = map[Trend]string{
	Unknown:    "unknown",
	Decreasing: "decreasing",
	Steady:     "steady",
	Increasing: "increasing",
}

func (t Trend) String() string {
	return trendNames[t]
}

func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// CalculateTrend compares the average weekly hours of the last two weeks with
// the average of the four weeks before them. The trend is Unknown unless both
// periods contain sessions.
func CalculateTrend(sessions []models.Session, now time.Time) Trend {
	recentFrom := timeutil.WeeksAgo(now, recentWeeks)
	historicalFrom := timeutil.WeeksAgo(now, historicalWeeks)

	recent := inWindow(sessions, recentFrom, now)
	historical := inWindow(sessions, historicalFrom, recentFrom)

	// inWindow is inclusive at both ends, so a session starting exactly at
	// recentFrom belongs to the recent period only
	historical = excludeStartingAt(historical, recentFrom)

	if len(recent) == 0 || len(historical) == 0 {
		return Unknown
	}

	recentPace := sumHours(recent, now) / recentWeeks
	historicalPace := sumHours(historical, now) / (historicalWeeks - recentWeeks)

	if historicalPace == 0 {
		if recentPace > 0 {
			return Increasing
		}

		return Steady
	}

	return classify((recentPace - historicalPace) / historicalPace)
}

// CalculateTargetTrend compares the average weekly hours of the last two
// weeks with the weekly target. Increasing means ahead of target. Like
// CalculateTrend, the trend is Unknown unless the last two weeks contain
// sessions.
func CalculateTargetTrend(
	sessions []models.Session,
	targetHoursPerWeek float64,
	now time.Time,
) Trend {
	if !(targetHoursPerWeek > 0) {
		return Unknown
	}

	recent := inWindow(sessions, timeutil.WeeksAgo(now, recentWeeks), now)
	if len(recent) == 0 {
		return Unknown
	}

	actualPace := sumHours(recent, now) / recentWeeks

	return classify((actualPace - targetHoursPerWeek) / targetHoursPerWeek)
}

func classify(change float64) Trend {
	switch {
	case change > trendThreshold:
		return Increasing
	case change < -trendThreshold:
		return Decreasing
	default:
		return Steady
	}
}

func excludeStartingAt(sessions []models.Session, t time.Time) []models.Session {
	out := sessions[:0:0]

	for i := range sessions {
		if !sessions[i].StartTime.Equal(t) {
			out = append(out, sessions[i])
		}
	}

	return out
}
