package projection

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ayoisaiah/mastery/internal/models"
)

var now = time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

// at returns a completed session that started hoursAgo hours before now and
// lasted the given number of minutes.
func at(hoursAgo, minutes int) models.Session {
	start := now.Add(-time.Duration(hoursAgo) * time.Hour)
	end := start.Add(time.Duration(minutes) * time.Minute)

	return models.Session{
		ID:        fmt.Sprintf("%d-%d", hoursAgo, minutes),
		StartTime: start,
		EndTime:   &end,
	}
}

// daysAgo is at with a day offset.
func daysAgo(days, minutes int) models.Session {
	return at(days*24, minutes)
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCalculateConfidence(t *testing.T) {
	highHistory := make([]models.Session, 0, 15)
	for k := range 15 {
		highHistory = append(highHistory, daysAgo(1+3*k, 30))
	}

	cases := []struct {
		name     string
		sessions []models.Session
		expected Confidence
	}{
		{
			name:     "no sessions",
			expected: Insufficient,
		},
		{
			name: "two distinct days",
			sessions: []models.Session{
				at(48, 600),
				at(24, 600),
				at(27, 600),
			},
			expected: Insufficient,
		},
		{
			name: "three days close together",
			sessions: []models.Session{
				daysAgo(3, 60),
				daysAgo(2, 60),
				daysAgo(1, 60),
			},
			expected: Low,
		},
		{
			name: "seven days within a single week",
			sessions: []models.Session{
				daysAgo(7, 30),
				daysAgo(6, 30),
				daysAgo(5, 30),
				daysAgo(4, 30),
				daysAgo(3, 30),
				daysAgo(2, 30),
				daysAgo(1, 30),
			},
			expected: Medium,
		},
		{
			name: "three days spread over two weeks",
			sessions: []models.Session{
				daysAgo(20, 60),
				daysAgo(13, 60),
				daysAgo(6, 60),
			},
			expected: Medium,
		},
		{
			name:     "fifteen days spread over six weeks",
			sessions: highHistory,
			expected: High,
		},
		{
			name: "session at the edge of the window is counted",
			sessions: []models.Session{
				daysAgo(56, 60),
				daysAgo(30, 60),
				daysAgo(1, 60),
			},
			expected: Medium,
		},
		{
			name: "session outside the window is ignored",
			sessions: []models.Session{
				daysAgo(57, 60),
				daysAgo(30, 60),
				daysAgo(1, 60),
			},
			expected: Insufficient,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateConfidence(tc.sessions, now)
			if got != tc.expected {
				t.Errorf("expected confidence to be: %s, but got: %s", tc.expected, got)
			}
		})
	}
}

func TestCalculateEMAProjection(t *testing.T) {
	cases := []struct {
		name           string
		sessions       []models.Session
		expected       SmartProjection
		hoursRemaining float64
	}{
		{
			name: "weekly sessions give a medium confidence estimate",
			sessions: []models.Session{
				daysAgo(20, 60),
				daysAgo(13, 60),
				daysAgo(6, 60),
			},
			hoursRemaining: 100,
			expected: SmartProjection{
				Mode:         models.RecentPace,
				Confidence:   Medium,
				Trend:        Increasing,
				Years:        1,
				Months:       11,
				HoursPerWeek: 1,
			},
		},
		{
			name: "three consecutive days give a ranged estimate",
			sessions: []models.Session{
				daysAgo(3, 120),
				daysAgo(2, 120),
				daysAgo(1, 120),
			},
			hoursRemaining: 9000,
			expected: SmartProjection{
				Mode:            models.RecentPace,
				Confidence:      Low,
				Trend:           Unknown,
				Years:           28,
				Months:          10,
				YearsUpperBound: 37,
				HoursPerWeek:    6,
			},
		},
		{
			name: "lots of time on only two days is not enough",
			sessions: []models.Session{
				at(48, 600),
				at(24, 600),
				at(27, 600),
			},
			hoursRemaining: 9000,
			expected: SmartProjection{
				Mode:       models.RecentPace,
				Confidence: Insufficient,
				Trend:      Unknown,
			},
		},
		{
			name: "sessions that were paused throughout have no pace",
			sessions: func() []models.Session {
				s := []models.Session{
					daysAgo(3, 60),
					daysAgo(2, 60),
					daysAgo(1, 60),
				}

				for i := range s {
					s[i].PausedSeconds = 3600
				}

				return s
			}(),
			hoursRemaining: 9000,
			expected: SmartProjection{
				Mode:       models.RecentPace,
				Confidence: Insufficient,
				Trend:      Unknown,
			},
		},
		{
			name: "goal already reached",
			sessions: []models.Session{
				daysAgo(1, 60),
			},
			hoursRemaining: 0,
			expected: SmartProjection{
				Mode:       models.RecentPace,
				Confidence: High,
				Trend:      Steady,
			},
		},
		{
			name:           "goal reached without any sessions",
			hoursRemaining: -3,
			expected: SmartProjection{
				Mode:       models.RecentPace,
				Confidence: High,
				Trend:      Steady,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateEMAProjection(tc.sessions, tc.hoursRemaining, now)

			if diff := cmp.Diff(tc.expected, got, approx); diff != "" {
				t.Errorf("projection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecentPace(t *testing.T) {
	cases := []struct {
		name     string
		sessions []models.Session
		expected float64
	}{
		{
			name:     "no sessions",
			expected: 0,
		},
		{
			name: "empty week is smoothed rather than skipped",
			sessions: []models.Session{
				daysAgo(20, 120),
				daysAgo(19, 120),
				daysAgo(6, 480),
			},
			// buckets [4, 0, 8]
			expected: 4.25,
		},
		{
			name: "trailing empty weeks are trimmed",
			sessions: []models.Session{
				daysAgo(34, 60),
				daysAgo(33, 60),
				daysAgo(32, 60),
			},
			expected: 3,
		},
		{
			name: "in progress session counts up to now",
			sessions: []models.Session{
				{StartTime: now.Add(-90 * time.Minute)},
			},
			expected: 1.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RecentPace(tc.sessions, now)

			if diff := cmp.Diff(tc.expected, got, approx); diff != "" {
				t.Errorf("pace mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectionMonotonicity(t *testing.T) {
	histories := map[string][]models.Session{
		"medium": {
			daysAgo(20, 60),
			daysAgo(13, 60),
			daysAgo(6, 60),
		},
		"low": {
			daysAgo(3, 45),
			daysAgo(2, 45),
			daysAgo(1, 45),
		},
	}

	for name, sessions := range histories {
		t.Run(name, func(t *testing.T) {
			prev := -1

			for remaining := 0.0; remaining <= 20000; remaining += 137.5 {
				p := CalculateEMAProjection(sessions, remaining, now)

				total := p.Years*12 + p.Months
				if total < prev {
					t.Fatalf(
						"projection decreased from %d to %d months at %v hours remaining",
						prev,
						total,
						remaining,
					)
				}

				prev = total
			}
		})
	}
}

func TestCalculateTargetProjection(t *testing.T) {
	cases := []struct {
		name           string
		sessions       []models.Session
		expected       SmartProjection
		target         float64
		hoursRemaining float64
	}{
		{
			name:           "whole months are truncated",
			target:         10,
			hoursRemaining: 100,
			expected: SmartProjection{
				Mode:         models.TargetBased,
				Confidence:   High,
				Trend:        Unknown,
				Months:       2,
				HoursPerWeek: 10,
			},
		},
		{
			name:           "zero target is insufficient",
			target:         0,
			hoursRemaining: 100,
			expected: SmartProjection{
				Mode:       models.TargetBased,
				Confidence: Insufficient,
				Trend:      Unknown,
			},
		},
		{
			name:           "goal already reached",
			target:         5,
			hoursRemaining: 0,
			expected: SmartProjection{
				Mode:         models.TargetBased,
				Confidence:   High,
				Trend:        Steady,
				HoursPerWeek: 5,
			},
		},
		{
			name:   "ahead of target",
			target: 10,
			sessions: []models.Session{
				daysAgo(10, 720),
				daysAgo(3, 720),
			},
			hoursRemaining: 9976,
			expected: SmartProjection{
				Mode:         models.TargetBased,
				Confidence:   High,
				Trend:        Increasing,
				Years:        19,
				Months:       2,
				HoursPerWeek: 10,
			},
		},
		{
			name:   "behind target",
			target: 10,
			sessions: []models.Session{
				daysAgo(10, 480),
				daysAgo(3, 480),
			},
			hoursRemaining: 520,
			expected: SmartProjection{
				Mode:         models.TargetBased,
				Confidence:   High,
				Trend:        Decreasing,
				Years:        1,
				HoursPerWeek: 10,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateTargetProjection(
				tc.target,
				tc.hoursRemaining,
				tc.sessions,
				now,
			)

			if diff := cmp.Diff(tc.expected, got, approx); diff != "" {
				t.Errorf("projection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateTrend(t *testing.T) {
	historical := []models.Session{
		daysAgo(40, 60),
		daysAgo(33, 60),
		daysAgo(26, 60),
		daysAgo(19, 60),
	}

	withRecent := func(minutes int) []models.Session {
		return append(
			append([]models.Session{}, historical...),
			daysAgo(10, minutes),
			daysAgo(3, minutes),
		)
	}

	cases := []struct {
		name     string
		sessions []models.Session
		expected Trend
	}{
		{
			name:     "twenty percent above",
			sessions: withRecent(72),
			expected: Increasing,
		},
		{
			name:     "twenty percent below",
			sessions: withRecent(48),
			expected: Decreasing,
		},
		{
			name:     "ten percent above",
			sessions: withRecent(66),
			expected: Steady,
		},
		{
			name:     "same pace",
			sessions: withRecent(60),
			expected: Steady,
		},
		{
			name:     "no recent sessions",
			sessions: historical,
			expected: Unknown,
		},
		{
			name: "no historical sessions",
			sessions: []models.Session{
				daysAgo(10, 60),
				daysAgo(3, 60),
			},
			expected: Unknown,
		},
		{
			name: "historical sessions without practiced time",
			sessions: func() []models.Session {
				s := withRecent(60)
				for i := range historical {
					s[i].PausedSeconds = 3600
				}

				return s
			}(),
			expected: Increasing,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateTrend(tc.sessions, now)
			if got != tc.expected {
				t.Errorf("expected trend to be: %s, but got: %s", tc.expected, got)
			}
		})
	}
}

func TestCalculateTargetTrend(t *testing.T) {
	recent := func(minutes int) []models.Session {
		return []models.Session{daysAgo(10, minutes), daysAgo(3, minutes)}
	}

	cases := []struct {
		name     string
		sessions []models.Session
		target   float64
		expected Trend
	}{
		{"ahead of target", recent(72), 1, Increasing},
		{"behind target", recent(48), 1, Decreasing},
		{"within tolerance", recent(66), 1, Steady},
		{"on target", recent(60), 1, Steady},
		{"nothing recent", []models.Session{daysAgo(30, 60)}, 1, Unknown},
		{"no sessions", nil, 1, Unknown},
		{"no target", recent(60), 0, Unknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateTargetTrend(tc.sessions, tc.target, now)
			if got != tc.expected {
				t.Errorf("expected trend to be: %s, but got: %s", tc.expected, got)
			}
		})
	}
}

func TestCalculate(t *testing.T) {
	sessions := []models.Session{
		daysAgo(20, 60),
		daysAgo(13, 60),
		daysAgo(6, 60),
	}

	target := 10.0

	cases := []struct {
		name     string
		skill    models.Skill
		expected models.ProjectionMode
		months   int
		years    int
	}{
		{
			name: "recent pace",
			skill: models.Skill{
				ProjectionMode: models.RecentPace,
				TargetHours:    103,
			},
			expected: models.RecentPace,
			years:    1,
			months:   11,
		},
		{
			name: "target based",
			skill: models.Skill{
				ProjectionMode:     models.TargetBased,
				TargetHoursPerWeek: &target,
				TargetHours:        103,
			},
			expected: models.TargetBased,
			months:   2,
		},
		{
			name: "target based without a target falls back to recent pace",
			skill: models.Skill{
				ProjectionMode: models.TargetBased,
				TargetHours:    103,
			},
			expected: models.RecentPace,
			years:    1,
			months:   11,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(&tc.skill, sessions, now)

			if got.Mode != tc.expected {
				t.Errorf("expected mode to be: %s, but got: %s", tc.expected, got.Mode)
			}

			if got.Years != tc.years || got.Months != tc.months {
				t.Errorf(
					"expected %d years and %d months, but got: %d years and %d months",
					tc.years,
					tc.months,
					got.Years,
					got.Months,
				)
			}
		})
	}
}
