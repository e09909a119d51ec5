package store

import "github.com/ayoisaiah/mastery/internal/apperr"

var (
	errMasteryRunning = &apperr.Error{
		Message: "is Mastery already running? Only one instance can be active at a time",
	}

	ErrSkillNotFound = &apperr.Error{
		Message: "skill not found: %s",
	}

	ErrSkillExists = &apperr.Error{
		Message: "a skill named %q already exists",
	}

	ErrSessionOverlap = &apperr.Error{
		Message: "session overlaps an existing session that started at %s",
	}

	errEmptySkillName = &apperr.Error{
		Message: "skill name must not be empty",
	}
)
