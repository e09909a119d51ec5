// Package notify sends milestone notifications
package notify

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Notifier announces practice milestones.
type Notifier interface {
	Milestone(skill string, hours int) error
}

// Desktop shows a desktop notification and optionally plays a sound.
type Desktop struct {
	// Sound is the path to an mp3, ogg, flac or wav file
	Sound   string
	Icon    string
	Enabled bool
}

func (d *Desktop) Milestone(skill string, hours int) error {
	if !d.Enabled {
		return nil
	}

	title, msg := MilestoneText(skill, hours)

	err := beeep.Notify(title, msg, d.Icon)
	if err != nil {
		return errNotify.Wrap(err)
	}

	if d.Sound == "" {
		return nil
	}

	err = Play(d.Sound)
	if err != nil {
		slog.Error("unable to play milestone sound",
			slog.String("sound", d.Sound),
			slog.Any("error", err),
		)
	}

	return nil
}

// MilestoneText returns the title and body of a milestone notification.
func MilestoneText(skill string, hours int) (title, msg string) {
	title = fmt.Sprintf("%s: %d hours", skill, hours)
	msg = fmt.Sprintf("You have practiced %s for %d hours. Keep going!", skill, hours)

	return title, msg
}

// Crossed returns the highest multiple of every hours that lies in
// (before, after] seconds, or 0 when no multiple was crossed.
func Crossed(beforeSeconds, afterSeconds, every int) int {
	if every <= 0 || afterSeconds <= beforeSeconds {
		return 0
	}

	step := every * secondsInAnHour

	reached := afterSeconds / step
	if reached == beforeSeconds/step {
		return 0
	}

	return reached * every
}

const secondsInAnHour = 3600
