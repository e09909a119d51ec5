// Package models defines the records persisted by the store and consumed by
// the projection engine
package models

import (
	"math"
	"time"
)

// DefaultTargetHours is the number of hours needed for mastery.
const DefaultTargetHours = 10000

const secondsInAnHour = 3600

// ProjectionMode selects how the time to mastery is projected for a skill.
type ProjectionMode string

const (
	RecentPace  ProjectionMode = "recent_pace"
	TargetBased ProjectionMode = "target_based"
)

// Valid reports whether m is a known projection mode.
func (m ProjectionMode) Valid() bool {
	return m == RecentPace || m == TargetBased
}

// Session is a single practice interval for a skill.
type Session struct {
	StartTime time.Time `json:"start_time"`
	// EndTime is nil while the session is in progress
	EndTime       *time.Time `json:"end_time,omitempty"`
	ID            string     `json:"id"`
	SkillID       string     `json:"skill_id"`
	PausedSeconds int        `json:"paused_seconds"`
}

// InProgress reports whether the session has not been stopped yet.
func (s *Session) InProgress() bool {
	return s.EndTime == nil
}

// End returns the end time of the session, or now if it is still running.
func (s *Session) End(now time.Time) time.Time {
	if s.EndTime != nil {
		return *s.EndTime
	}

	return now
}

// DurationSeconds returns the practiced time in whole seconds excluding
// pauses. It is never negative.
func (s *Session) DurationSeconds(now time.Time) int {
	d := s.End(now).Sub(s.StartTime) - time.Duration(s.PausedSeconds)*time.Second
	if d <= 0 {
		return 0
	}

	return int(d / time.Second)
}

// Hours returns the practiced time in fractional hours.
func (s *Session) Hours(now time.Time) float64 {
	return float64(s.DurationSeconds(now)) / secondsInAnHour
}

// Overlaps reports whether s and other share any instant.
func (s *Session) Overlaps(other *Session, now time.Time) bool {
	return s.StartTime.Before(other.End(now)) &&
		other.StartTime.Before(s.End(now))
}

// Skill is something being practiced toward mastery.
type Skill struct {
	CreatedAt time.Time `json:"created_at"`
	// TargetHoursPerWeek is only consulted in TargetBased mode
	TargetHoursPerWeek *float64       `json:"target_hours_per_week,omitempty"`
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	ProjectionMode     ProjectionMode `json:"projection_mode"`
	TargetHours        float64        `json:"target_hours"`
}

// Target returns the goal in hours, falling back to the default.
func (s *Skill) Target() float64 {
	if s.TargetHours <= 0 {
		return DefaultTargetHours
	}

	return s.TargetHours
}

// HoursRemaining returns how many hours are left to reach the goal given the
// total practiced seconds.
func (s *Skill) HoursRemaining(totalSeconds int) float64 {
	return math.Max(s.Target()-float64(totalSeconds)/secondsInAnHour, 0)
}

// WeeklyTarget returns the declared weekly goal, or 0 if none is set.
func (s *Skill) WeeklyTarget() float64 {
	if s.TargetHoursPerWeek == nil {
		return 0
	}

	return *s.TargetHoursPerWeek
}

// TotalSeconds sums the duration of all sessions.
func TotalSeconds(sessions []Session, now time.Time) int {
	var total int

	for i := range sessions {
		total += sessions[i].DurationSeconds(now)
	}

	return total
}

// ActiveTimer is the checkpoint of an in-progress session. It is used to
// recover sessions when the process is killed before they were stopped.
type ActiveTimer struct {
	StartTime time.Time  `json:"start_time"`
	LastSeen  time.Time  `json:"last_seen"`
	PausedAt  *time.Time `json:"paused_at,omitempty"`
	SessionID string     `json:"session_id"`
	SkillID   string     `json:"skill_id"`
	// PausedSeconds excludes the pause interval that started at PausedAt
	PausedSeconds int `json:"paused_seconds"`
}
