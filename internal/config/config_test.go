package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mastery/internal/models"
)

func TestWithViperConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mastery", "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.InDelta(t, 10000.0, cfg.Projection.TargetHours, 0)
	assert.Equal(t, models.RecentPace, cfg.Projection.DefaultMode)
	assert.Zero(t, cfg.Projection.TargetHoursPerWeek)
	assert.True(t, cfg.Display.DarkTheme)
	assert.False(t, cfg.Display.TwentyFourHour)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, 100, cfg.Notifications.MilestoneHours)
	assert.Empty(t, cfg.Notifications.Sound)
	assert.Empty(t, cfg.Settings.Cmd)
}

func TestWithViperConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	yml := `projection:
  target_hours: 5000
  default_mode: target_based
  target_hours_per_week: 12.5
display:
  24hr_clock: true
notifications:
  enabled: false
  milestone_hours: 50
settings:
  cmd: "echo done"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.InDelta(t, 5000.0, cfg.Projection.TargetHours, 0)
	assert.Equal(t, models.TargetBased, cfg.Projection.DefaultMode)
	assert.InDelta(t, 12.5, cfg.Projection.TargetHoursPerWeek, 0)
	assert.True(t, cfg.Display.TwentyFourHour)
	assert.True(t, cfg.Display.DarkTheme)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, 50, cfg.Notifications.MilestoneHours)
	assert.Equal(t, "echo done", cfg.Settings.Cmd)
}

func TestPromptAnswersAreWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	answers := func(c *Config) error {
		return applyPromptOptions(c, PromptOptions{
			Mode:         models.TargetBased,
			TargetHours:  1000,
			PerWeek:      " 8 ",
			Notification: false,
		})
	}

	_, err := New(answers, WithViperConfig(path))
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, models.TargetBased, cfg.Projection.DefaultMode)
	assert.InDelta(t, 1000.0, cfg.Projection.TargetHours, 0)
	assert.InDelta(t, 8.0, cfg.Projection.TargetHoursPerWeek, 0)
	assert.False(t, cfg.Notifications.Enabled)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	wav := filepath.Join(dir, "bell.wav")
	require.NoError(t, os.WriteFile(wav, nil, 0o600))

	valid := func() Config {
		return Config{
			Projection: ProjectionConfig{
				TargetHours: 10000,
				DefaultMode: models.RecentPace,
			},
			Notifications: NotificationConfig{MilestoneHours: 100},
		}
	}

	cases := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}},
		{
			name:    "zero target hours",
			modify:  func(c *Config) { c.Projection.TargetHours = 0 },
			wantErr: true,
		},
		{
			name:    "unknown mode",
			modify:  func(c *Config) { c.Projection.DefaultMode = "weekly" },
			wantErr: true,
		},
		{
			name:    "more than a week of hours",
			modify:  func(c *Config) { c.Projection.TargetHoursPerWeek = 169 },
			wantErr: true,
		},
		{
			name:    "negative milestone",
			modify:  func(c *Config) { c.Notifications.MilestoneHours = -1 },
			wantErr: true,
		},
		{
			name:   "existing sound",
			modify: func(c *Config) { c.Notifications.Sound = wav },
		},
		{
			name: "missing sound",
			modify: func(c *Config) {
				c.Notifications.Sound = filepath.Join(dir, "gone.mp3")
			},
			wantErr: true,
		},
		{
			name: "unsupported sound format",
			modify: func(c *Config) {
				c.Notifications.Sound = filepath.Join(dir, "bell.aiff")
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestApplyCLIOptions(t *testing.T) {
	cfg := &Config{
		Notifications: NotificationConfig{Enabled: true},
		Settings:      SettingsConfig{Cmd: "from-file"},
	}

	applyCLIOptions(cfg, CLIOptions{})
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "from-file", cfg.Settings.Cmd)

	applyCLIOptions(cfg, CLIOptions{DisableNotify: true, SessionCmd: "notify-send hi"})
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "notify-send hi", cfg.Settings.Cmd)
}

func TestNewSkillUsesDefaults(t *testing.T) {
	cfg := &Config{
		Projection: ProjectionConfig{
			TargetHours:        5000,
			DefaultMode:        models.TargetBased,
			TargetHoursPerWeek: 6,
		},
	}

	s := cfg.NewSkill("Piano")
	assert.Equal(t, "Piano", s.Name)
	assert.InDelta(t, 5000.0, s.TargetHours, 0)
	assert.Equal(t, models.TargetBased, s.ProjectionMode)
	require.NotNil(t, s.TargetHoursPerWeek)
	assert.InDelta(t, 6.0, *s.TargetHoursPerWeek, 0)

	cfg.Projection.TargetHoursPerWeek = 0
	assert.Nil(t, cfg.NewSkill("Go").TargetHoursPerWeek)
}
