package projection

import (
	"time"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
)

// Confidence grades how much data a projection is based on.
type Confidence int

const (
	Insufficient Confidence = iota
	Low
	Medium
	High
)

var confidenceNames = map[Confidence]string{
	Insufficient: "insufficient",
	Low:          "low",
	Medium:       "medium",
	High:         "high",
}

func (c Confidence) String() string {
	if s, ok := confidenceNames[c]; ok {
		return s
	}

	return "unknown"
}

func (c Confidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CalculateConfidence grades the sessions in the rolling window ending at
// now. Calendar days are counted in the location of now.
func CalculateConfidence(sessions []models.Session, now time.Time) Confidence {
	window := inWindow(sessions, timeutil.WeeksAgo(now, WindowWeeks), now)

	return confidenceOf(window, now.Location())
}

func confidenceOf(window []models.Session, loc *time.Location) Confidence {
	days := make(map[time.Time]struct{})

	for i := range window {
		days[timeutil.StartOfDay(window[i].StartTime, loc)] = struct{}{}
	}

	uniqueDays := len(days)

	if uniqueDays < minUniqueDays {
		return Insufficient
	}

	first, last := bounds(window)
	span := timeutil.WeeksBetween(first, last)

	switch {
	case uniqueDays >= highConfidenceDays && span >= highConfidenceSpanWeeks:
		return High
	case uniqueDays >= mediumConfidenceDays || span >= mediumConfidenceSpanWeeks:
		return Medium
	default:
		return Low
	}
}
