package config

import "github.com/ayoisaiah/mastery/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errResolvePath = &apperr.Error{
		Message: "unable to resolve application paths",
	}

	errPrompt = &apperr.Error{
		Message: "first-run prompt failed",
	}

	errInvalidTargetHours = &apperr.Error{
		Message: "target hours must be between %v and %v, got %v",
	}

	errInvalidWeeklyTarget = &apperr.Error{
		Message: "target hours per week must be between 0 and %v, got %v",
	}

	errInvalidMode = &apperr.Error{
		Message: "unknown projection mode %q (expected recent_pace or target_based)",
	}

	errInvalidMilestone = &apperr.Error{
		Message: "milestone hours must not be negative, got %d",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file not found: %s",
	}
)
