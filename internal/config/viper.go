package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/osutil"
)

const (
	keyTargetHours          = "projection.target_hours"
	keyDefaultMode          = "projection.default_mode"
	keyTargetHoursPerWeek   = "projection.target_hours_per_week"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyMilestoneHours       = "notifications.milestone_hours"
	keyNotificationSound    = "notifications.sound"
	keySessionCmd           = "settings.cmd"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the default values and
// any answers already collected by the first-run prompt.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTargetHours, models.DefaultTargetHours)
	v.SetDefault(keyDefaultMode, string(models.RecentPace))
	v.SetDefault(keyTargetHoursPerWeek, 0)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyMilestoneHours, 100)
	v.SetDefault(keyNotificationSound, "")
	v.SetDefault(keySessionCmd, "")

	if c.Projection.DefaultMode != "" {
		v.Set(keyDefaultMode, string(c.Projection.DefaultMode))
	}

	if c.Projection.TargetHours > 0 {
		v.Set(keyTargetHours, c.Projection.TargetHours)
	}

	if c.Projection.TargetHoursPerWeek > 0 {
		v.Set(keyTargetHoursPerWeek, c.Projection.TargetHoursPerWeek)
	}

	if c.prompted {
		v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
