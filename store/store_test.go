package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mastery/internal/models"
)

var now = time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "data", "mastery.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func createSkill(t *testing.T, c *Client, name string) *models.Skill {
	t.Helper()

	s := &models.Skill{
		Name:           name,
		ProjectionMode: models.RecentPace,
		TargetHours:    models.DefaultTargetHours,
		CreatedAt:      now,
	}

	require.NoError(t, c.CreateSkill(s))

	return s
}

func session(skillID string, start time.Time, minutes int) *models.Session {
	end := start.Add(time.Duration(minutes) * time.Minute)

	return &models.Session{
		SkillID:   skillID,
		StartTime: start,
		EndTime:   &end,
	}
}

func TestSecondClientIsLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mastery.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.True(t, IsLocked(err), "expected lock error, got: %v", err)
}

func TestSkillNamesAreUnique(t *testing.T) {
	c := newTestClient(t)

	piano := createSkill(t, c, "Piano")
	assert.NotEmpty(t, piano.ID)

	err := c.CreateSkill(&models.Skill{Name: "  piano "})
	assert.True(t, errors.Is(err, ErrSkillExists))

	err = c.CreateSkill(&models.Skill{Name: "   "})
	assert.Error(t, err)

	got, err := c.GetSkillByName("PIANO")
	require.NoError(t, err)
	assert.Equal(t, piano.ID, got.ID)

	_, err = c.GetSkillByName("Guitar")
	assert.True(t, errors.Is(err, ErrSkillNotFound))
}

func TestListSkillsNaturalOrder(t *testing.T) {
	c := newTestClient(t)

	for _, name := range []string{"Piano 10", "Go", "Piano 2"} {
		createSkill(t, c, name)
	}

	skills, err := c.ListSkills()
	require.NoError(t, err)

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{"Go", "Piano 2", "Piano 10"}, names)
}

func TestUpdateSkill(t *testing.T) {
	c := newTestClient(t)

	piano := createSkill(t, c, "Piano")
	createSkill(t, c, "Go")

	perWeek := 5.0
	piano.ProjectionMode = models.TargetBased
	piano.TargetHoursPerWeek = &perWeek
	require.NoError(t, c.UpdateSkill(piano))

	got, err := c.GetSkill(piano.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TargetBased, got.ProjectionMode)
	assert.InDelta(t, 5.0, got.WeeklyTarget(), 0)

	piano.Name = "go"
	assert.True(t, errors.Is(c.UpdateSkill(piano), ErrSkillExists))

	missing := &models.Skill{ID: "missing", Name: "Chess"}
	assert.True(t, errors.Is(c.UpdateSkill(missing), ErrSkillNotFound))
}

func TestSessionsAreChronological(t *testing.T) {
	c := newTestClient(t)

	s := createSkill(t, c, "Piano")

	starts := []time.Time{
		now.Add(-2 * time.Hour),
		now.Add(-72 * time.Hour),
		now.Add(-2*time.Hour + 500*time.Millisecond),
		now.Add(-24 * time.Hour),
	}

	for _, start := range starts {
		require.NoError(t, c.SaveSession(session(s.ID, start, 1)))
	}

	sessions, err := c.GetSessions(s.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 4)

	for i := 1; i < len(sessions); i++ {
		assert.True(t, sessions[i-1].StartTime.Before(sessions[i].StartTime))
		assert.NotEmpty(t, sessions[i].ID)
	}

	since, err := c.SessionsSince(s.ID, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, since, 3)

	none, err := c.GetSessions("unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSaveSessionOverwritesByStartTime(t *testing.T) {
	c := newTestClient(t)

	s := createSkill(t, c, "Piano")

	sess := &models.Session{SkillID: s.ID, StartTime: now.Add(-time.Hour)}
	require.NoError(t, c.SaveSession(sess))

	end := now
	sess.EndTime = &end
	sess.PausedSeconds = 120
	require.NoError(t, c.SaveSession(sess))

	sessions, err := c.GetSessions(s.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 3480, sessions[0].DurationSeconds(now))

	err = c.SaveSession(&models.Session{SkillID: "missing", StartTime: now})
	assert.True(t, errors.Is(err, ErrSkillNotFound))
}

func TestAddSessionRejectsOverlap(t *testing.T) {
	c := newTestClient(t)

	piano := createSkill(t, c, "Piano")
	golang := createSkill(t, c, "Go")

	require.NoError(t, c.AddSession(session(piano.ID, now.Add(-3*time.Hour), 60), now))

	cases := []struct {
		sess    *models.Session
		name    string
		wantErr bool
	}{
		{
			name:    "starts inside",
			sess:    session(piano.ID, now.Add(-150*time.Minute), 60),
			wantErr: true,
		},
		{
			name:    "encloses",
			sess:    session(piano.ID, now.Add(-4*time.Hour), 180),
			wantErr: true,
		},
		{
			name: "touches end",
			sess: session(piano.ID, now.Add(-2*time.Hour), 30),
		},
		{
			name: "different skill",
			sess: session(golang.ID, now.Add(-3*time.Hour), 60),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.AddSession(tc.sess, now)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrSessionOverlap), "got: %v", err)
				return
			}

			assert.NoError(t, err)
		})
	}

	running := &models.Session{SkillID: golang.ID, StartTime: now.Add(-30 * time.Minute)}
	require.NoError(t, c.SaveSession(running))

	err := c.AddSession(session(golang.ID, now.Add(-10*time.Minute), 5), now)
	assert.True(t, errors.Is(err, ErrSessionOverlap))
}

func TestActiveTimer(t *testing.T) {
	c := newTestClient(t)

	active, err := c.GetActive()
	require.NoError(t, err)
	assert.Nil(t, active)

	paused := now.Add(-time.Minute)
	want := &models.ActiveTimer{
		SessionID:     "sess",
		SkillID:       "skill",
		StartTime:     now.Add(-time.Hour),
		LastSeen:      now,
		PausedAt:      &paused,
		PausedSeconds: 30,
	}
	require.NoError(t, c.SaveActive(want))

	got, err := c.GetActive()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.SessionID, got.SessionID)
	assert.True(t, want.LastSeen.Equal(got.LastSeen))
	require.NotNil(t, got.PausedAt)
	assert.True(t, paused.Equal(*got.PausedAt))
	assert.Equal(t, 30, got.PausedSeconds)

	require.NoError(t, c.ClearActive())

	got, err = c.GetActive()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteSkillCascades(t *testing.T) {
	c := newTestClient(t)

	piano := createSkill(t, c, "Piano")
	golang := createSkill(t, c, "Go")

	require.NoError(t, c.SaveSession(session(piano.ID, now.Add(-time.Hour), 30)))
	require.NoError(t, c.SaveSession(session(golang.ID, now.Add(-time.Hour), 30)))
	require.NoError(t, c.SaveActive(&models.ActiveTimer{SkillID: piano.ID}))

	require.NoError(t, c.DeleteSkill(piano.ID))

	_, err := c.GetSkill(piano.ID)
	assert.True(t, errors.Is(err, ErrSkillNotFound))

	sessions, err := c.GetSessions(piano.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	active, err := c.GetActive()
	require.NoError(t, err)
	assert.Nil(t, active)

	sessions, err = c.GetSessions(golang.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	assert.True(t, errors.Is(c.DeleteSkill(piano.ID), ErrSkillNotFound))
}

func TestRecoverActive(t *testing.T) {
	c := newTestClient(t)
	piano := createSkill(t, c, "Piano")

	sess := &models.Session{
		SkillID:   piano.ID,
		StartTime: now.Add(-2 * time.Hour),
	}
	require.NoError(t, c.SaveSession(sess))

	pausedAt := now.Add(-70 * time.Minute)
	require.NoError(t, c.SaveActive(&models.ActiveTimer{
		SessionID:     sess.ID,
		SkillID:       piano.ID,
		StartTime:     sess.StartTime,
		LastSeen:      now.Add(-time.Hour),
		PausedAt:      &pausedAt,
		PausedSeconds: 300,
	}))

	got, err := c.RecoverActive()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.EndTime.Equal(now.Add(-time.Hour)))
	assert.Equal(t, 900, got.PausedSeconds)

	// the recovered duration stays fixed however late the sessions are read
	later := now.Add(72 * time.Hour)

	sessions, err := c.GetSessions(piano.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].InProgress())
	assert.Equal(t, 2700, sessions[0].DurationSeconds(later))
	assert.Equal(t, 2700, models.TotalSeconds(sessions, later))

	active, err := c.GetActive()
	require.NoError(t, err)
	assert.Nil(t, active)

	got, err = c.RecoverActive()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecoverActiveDropsStaleCheckpoint(t *testing.T) {
	cases := []struct {
		name   string
		active func(s *models.Session) *models.ActiveTimer
	}{
		{
			name: "session never saved",
			active: func(s *models.Session) *models.ActiveTimer {
				return &models.ActiveTimer{
					SessionID: "gone",
					SkillID:   s.SkillID,
					StartTime: now.Add(-time.Minute),
				}
			},
		},
		{
			name: "session already stopped",
			active: func(s *models.Session) *models.ActiveTimer {
				return &models.ActiveTimer{
					SessionID: s.ID,
					SkillID:   s.SkillID,
					StartTime: s.StartTime,
					LastSeen:  now,
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t)
			piano := createSkill(t, c, "Piano")

			sess := session(piano.ID, now.Add(-3*time.Hour), 30)
			require.NoError(t, c.SaveSession(sess))
			require.NoError(t, c.SaveActive(tc.active(sess)))

			got, err := c.RecoverActive()
			require.NoError(t, err)
			assert.Nil(t, got)

			active, err := c.GetActive()
			require.NoError(t, err)
			assert.Nil(t, active)

			sessions, err := c.GetSessions(piano.ID)
			require.NoError(t, err)
			require.Len(t, sessions, 1)
			assert.Equal(t, 1800, sessions[0].DurationSeconds(now))
		})
	}
}
