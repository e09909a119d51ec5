package notify

import "github.com/ayoisaiah/mastery/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
