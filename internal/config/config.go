// Package config loads the mastery configuration from the config file,
// command-line flags and first-run prompts
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ayoisaiah/mastery/internal/models"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Projection    ProjectionConfig   `mapstructure:"projection"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`

		prompted bool
	}

	// ProjectionConfig holds the defaults applied to newly added skills.
	ProjectionConfig struct {
		DefaultMode        models.ProjectionMode `mapstructure:"default_mode"`
		TargetHours        float64               `mapstructure:"target_hours"`
		TargetHoursPerWeek float64               `mapstructure:"target_hours_per_week"`
	}

	// NotificationConfig holds milestone notification settings.
	NotificationConfig struct {
		Sound          string `mapstructure:"sound"`
		MilestoneHours int    `mapstructure:"milestone_hours"`
		Enabled        bool   `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		// Cmd is executed after every stopped session
		Cmd string `mapstructure:"cmd"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a Config by applying opts in order and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// NewSkill returns a skill initialised with the configured defaults.
func (c *Config) NewSkill(name string) models.Skill {
	s := models.Skill{
		Name:           name,
		TargetHours:    c.Projection.TargetHours,
		ProjectionMode: c.Projection.DefaultMode,
	}

	if c.Projection.TargetHoursPerWeek > 0 {
		perWeek := c.Projection.TargetHoursPerWeek
		s.TargetHoursPerWeek = &perWeek
	}

	return s
}

func (c *Config) String() string {
	return fmt.Sprintf("%+v", *c)
}
