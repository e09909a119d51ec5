// Package projection estimates how long it will take to reach a practice goal
// from a history of sessions. Every function in this package is pure: it
// reads an immutable snapshot of sessions and a reference time, and never
// fails. Missing data is reported through the Insufficient confidence level.
package projection

import (
	"math"
	"time"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
)

const (
	// WindowWeeks is the length of the rolling window the recent pace and the
	// confidence level are computed from.
	WindowWeeks = 8
	// Alpha is the smoothing factor of the weekly moving average.
	Alpha = 0.25

	minUniqueDays             = 3
	highConfidenceDays        = 15
	highConfidenceSpanWeeks   = 4
	mediumConfidenceDays      = 7
	mediumConfidenceSpanWeeks = 2

	lowConfidenceFactor = 1.3

	// projections beyond this are clamped so that a vanishing pace cannot
	// overflow the month count
	maxProjectedMonths = 1000 * timeutil.MonthsInAYear
)

// SmartProjection is the estimated time to reach a goal.
type SmartProjection struct {
	Mode       models.ProjectionMode `json:"mode"`
	Confidence Confidence            `json:"confidence"`
	Trend      Trend                 `json:"trend"`
	Years      int                   `json:"years"`
	Months     int                   `json:"months"`
	// YearsUpperBound is only set for low confidence projections
	YearsUpperBound int     `json:"years_upper_bound,omitempty"`
	HoursPerWeek    float64 `json:"hours_per_week"`
}

// Calculate projects the remaining time for skill using the mode it is
// configured with. Target based projections fall back to the recent pace
// when no weekly target has been set.
func Calculate(
	skill *models.Skill,
	sessions []models.Session,
	now time.Time,
) SmartProjection {
	remaining := skill.HoursRemaining(models.TotalSeconds(sessions, now))

	if skill.ProjectionMode == models.TargetBased && skill.WeeklyTarget() > 0 {
		return CalculateTargetProjection(
			skill.WeeklyTarget(),
			remaining,
			sessions,
			now,
		)
	}

	return CalculateEMAProjection(sessions, remaining, now)
}

// CalculateEMAProjection projects the remaining time from an exponential
// moving average of the weekly hours practiced in the last WindowWeeks weeks.
func CalculateEMAProjection(
	sessions []models.Session,
	hoursRemaining float64,
	now time.Time,
) SmartProjection {
	if hoursRemaining <= 0 {
		return achieved(models.RecentPace, 0)
	}

	window := inWindow(sessions, timeutil.WeeksAgo(now, WindowWeeks), now)

	confidence := confidenceOf(window, now.Location())
	if confidence == Insufficient {
		return insufficient(models.RecentPace)
	}

	pace := ema(weeklyHours(window, now))
	if !(pace > 0) || math.IsInf(pace, 0) {
		return insufficient(models.RecentPace)
	}

	years, months := yearsAndMonths(hoursRemaining / pace)

	p := SmartProjection{
		Mode:         models.RecentPace,
		Confidence:   confidence,
		Trend:        CalculateTrend(sessions, now),
		Years:        years,
		Months:       months,
		HoursPerWeek: pace,
	}

	if confidence == Low {
		p.YearsUpperBound = int(float64(years)*lowConfidenceFactor + 1)
	}

	return p
}

// CalculateTargetProjection projects the remaining time assuming the user
// practices targetHoursPerWeek every week from now on.
func CalculateTargetProjection(
	targetHoursPerWeek, hoursRemaining float64,
	sessions []models.Session,
	now time.Time,
) SmartProjection {
	if !(targetHoursPerWeek > 0) || math.IsInf(targetHoursPerWeek, 0) {
		return insufficient(models.TargetBased)
	}

	if hoursRemaining <= 0 {
		return achieved(models.TargetBased, targetHoursPerWeek)
	}

	years, months := yearsAndMonths(hoursRemaining / targetHoursPerWeek)

	return SmartProjection{
		Mode:         models.TargetBased,
		Confidence:   High,
		Trend:        CalculateTargetTrend(sessions, targetHoursPerWeek, now),
		Years:        years,
		Months:       months,
		HoursPerWeek: targetHoursPerWeek,
	}
}

// RecentPace returns the smoothed hours per week over the rolling window, or
// 0 if nothing was practiced in it.
func RecentPace(sessions []models.Session, now time.Time) float64 {
	window := inWindow(sessions, timeutil.WeeksAgo(now, WindowWeeks), now)
	if len(window) == 0 {
		return 0
	}

	return ema(weeklyHours(window, now))
}

func insufficient(mode models.ProjectionMode) SmartProjection {
	return SmartProjection{
		Mode:       mode,
		Confidence: Insufficient,
		Trend:      Unknown,
	}
}

func achieved(mode models.ProjectionMode, hoursPerWeek float64) SmartProjection {
	return SmartProjection{
		Mode:         mode,
		Confidence:   High,
		Trend:        Steady,
		HoursPerWeek: hoursPerWeek,
	}
}

// yearsAndMonths converts a number of weeks to whole years and months,
// truncating any remainder.
func yearsAndMonths(weeks float64) (years, months int) {
	total := weeks / timeutil.WeeksInAMonth

	switch {
	case math.IsNaN(total) || total < 0:
		total = 0
	case total > maxProjectedMonths:
		total = maxProjectedMonths
	}

	n := int(total)

	return n / timeutil.MonthsInAYear, n % timeutil.MonthsInAYear
}

// inWindow returns the sessions that started within [from, to].
func inWindow(sessions []models.Session, from, to time.Time) []models.Session {
	var out []models.Session

	for i := range sessions {
		start := sessions[i].StartTime
		if start.Before(from) || start.After(to) {
			continue
		}

		out = append(out, sessions[i])
	}

	return out
}

// bounds returns the earliest and latest start time. sessions must not be
// empty.
func bounds(sessions []models.Session) (first, last time.Time) {
	first, last = sessions[0].StartTime, sessions[0].StartTime

	for i := range sessions[1:] {
		start := sessions[i+1].StartTime

		if start.Before(first) {
			first = start
		}

		if start.After(last) {
			last = start
		}
	}

	return first, last
}

// sumHours adds up the practiced hours of all sessions.
func sumHours(sessions []models.Session, now time.Time) float64 {
	var total float64

	for i := range sessions {
		total += sessions[i].Hours(now)
	}

	return total
}

// weeklyHours buckets the window into consecutive weeks starting at the first
// session and ending at the later of the last session and now. Trailing empty
// weeks are dropped, but at least one bucket is always returned.
func weeklyHours(window []models.Session, now time.Time) []float64 {
	if len(window) == 0 {
		return []float64{0}
	}

	first, last := bounds(window)

	end := last
	if now.After(end) {
		end = now
	}

	buckets := make([]float64, int(end.Sub(first)/timeutil.Week)+1)

	for i := range window {
		idx := int(window[i].StartTime.Sub(first) / timeutil.Week)
		if idx >= len(buckets) {
			idx = len(buckets) - 1
		}

		buckets[idx] += window[i].Hours(now)
	}

	for len(buckets) > 1 && buckets[len(buckets)-1] == 0 {
		buckets = buckets[:len(buckets)-1]
	}

	return buckets
}

// ema folds the buckets from oldest to newest.
func ema(buckets []float64) float64 {
	if len(buckets) == 0 {
		return 0
	}

	avg := buckets[0]

	for _, v := range buckets[1:] {
		avg = Alpha*v + (1-Alpha)*avg
	}

	return avg
}
