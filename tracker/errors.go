package tracker

import "github.com/ayoisaiah/mastery/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}

	errNoSkills = &apperr.Error{
		Message: "no skills found: add one with 'mastery add-skill <name>'",
	}
)
