package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	minTargetHours = 1
	maxTargetHours = 100000
	hoursInAWeek   = 168
)

var soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateProjection(); err != nil {
		return err
	}

	return c.validateNotifications()
}

func (c *Config) validateProjection() error {
	p := c.Projection

	if p.TargetHours < minTargetHours || p.TargetHours > maxTargetHours {
		return errInvalidTargetHours.Fmt(
			minTargetHours,
			maxTargetHours,
			p.TargetHours,
		)
	}

	if !p.DefaultMode.Valid() {
		return errInvalidMode.Fmt(p.DefaultMode)
	}

	if p.TargetHoursPerWeek < 0 || p.TargetHoursPerWeek > hoursInAWeek {
		return errInvalidWeeklyTarget.Fmt(hoursInAWeek, p.TargetHoursPerWeek)
	}

	return nil
}

func (c *Config) validateNotifications() error {
	n := c.Notifications

	if n.MilestoneHours < 0 {
		return errInvalidMilestone.Fmt(n.MilestoneHours)
	}

	if n.Sound == "" {
		return nil
	}

	return validateSound(n.Sound)
}

// validateSound checks that sound points to an existing audio file in a
// supported format.
func validateSound(sound string) error {
	ext := strings.ToLower(filepath.Ext(sound))

	if !slices.Contains(soundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(sound)
	}

	return err
}
