// Package stats summarises the practice history of a skill
package stats

import (
	"time"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
	"github.com/ayoisaiah/mastery/projection"
)

// Weeks is the number of weekly totals included in a summary.
const Weeks = projection.WindowWeeks

// WeekTotal is the practiced time of the week starting at Start.
type WeekTotal struct {
	Start time.Time `json:"start"`
	Hours float64   `json:"hours"`
}

// Summary is an overview of the progress made on a skill.
type Summary struct {
	Projection            projection.SmartProjection `json:"projection"`
	Skill                 string                     `json:"skill"`
	ProjectionText        string                     `json:"projection_text"`
	Weekly                []WeekTotal                `json:"weekly"`
	TotalSeconds          int                        `json:"total_seconds"`
	TotalHours            float64                    `json:"total_hours"`
	TargetHours           float64                    `json:"target_hours"`
	HoursRemaining        float64                    `json:"hours_remaining"`
	PercentComplete       float64                    `json:"percent_complete"`
	RecentPace            float64                    `json:"recent_pace"`
	SessionCount          int                        `json:"session_count"`
	AverageSessionSeconds int                        `json:"average_session_seconds"`
}

// Compute builds the summary of skill from its sessions as of now.
func Compute(
	skill *models.Skill,
	sessions []models.Session,
	now time.Time,
) Summary {
	total := models.TotalSeconds(sessions, now)
	target := skill.Target()
	hours := float64(total) / timeutil.SecondsInAnHour

	p := projection.Calculate(skill, sessions, now)

	s := Summary{
		Skill:           skill.Name,
		TotalSeconds:    total,
		TotalHours:      hours,
		TargetHours:     target,
		HoursRemaining:  skill.HoursRemaining(total),
		PercentComplete: min(hours*100/target, 100),
		SessionCount:    len(sessions),
		RecentPace:      projection.RecentPace(sessions, now),
		Projection:      p,
		ProjectionText:  p.Formatted(),
		Weekly:          weeklyTotals(sessions, now),
	}

	if len(sessions) > 0 {
		s.AverageSessionSeconds = total / len(sessions)
	}

	return s
}

// weeklyTotals returns the hours practiced in each of the last Weeks weeks,
// oldest first. Sessions count toward the week they started in.
func weeklyTotals(sessions []models.Session, now time.Time) []WeekTotal {
	weeks := make([]WeekTotal, Weeks)

	from := timeutil.WeeksAgo(now, Weeks)

	for i := range weeks {
		weeks[i].Start = from.Add(time.Duration(i) * timeutil.Week)
	}

	for i := range sessions {
		start := sessions[i].StartTime
		if start.Before(from) || start.After(now) {
			continue
		}

		idx := min(int(start.Sub(from)/timeutil.Week), Weeks-1)

		weeks[idx].Hours += sessions[i].Hours(now)
	}

	return weeks
}
