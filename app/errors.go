package app

import "github.com/ayoisaiah/mastery/internal/apperr"

var (
	errSkillRequired = &apperr.Error{
		Message: "a skill name is required",
	}

	errInvalidRange = &apperr.Error{
		Message: "the session must end after it starts (%s - %s)",
	}

	errFutureSession = &apperr.Error{
		Message: "the session cannot end in the future",
	}

	errInvalidPaused = &apperr.Error{
		Message: "paused time must be positive and shorter than the session (%s)",
	}

	errInvalidMode = &apperr.Error{
		Message: "unknown projection mode %q (expected recent_pace or target_based)",
	}

	errInvalidWeeklyTarget = &apperr.Error{
		Message: "hours per week must be between 0 and 168, got %v",
	}

	errInvalidTargetHours = &apperr.Error{
		Message: "target hours must be positive, got %v",
	}
)
