package app

import (
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
	"github.com/ayoisaiah/mastery/internal/ui"
	"github.com/ayoisaiah/mastery/store"
)

// newLoggedSession builds a completed session from the values of the log
// command. The skill ID is left for the caller to fill in.
func newLoggedSession(
	startStr, endStr string,
	paused time.Duration,
	now time.Time,
) (*models.Session, error) {
	start, err := timeutil.FromStr(startStr, now)
	if err != nil {
		return nil, err
	}

	end, err := timeutil.FromStr(endStr, now)
	if err != nil {
		return nil, err
	}

	if !end.After(start) {
		return nil, errInvalidRange.Fmt(
			start.Format(time.DateTime),
			end.Format(time.DateTime),
		)
	}

	if end.After(now) {
		return nil, errFutureSession
	}

	if paused < 0 || paused >= end.Sub(start) {
		return nil, errInvalidPaused.Fmt(paused)
	}

	return &models.Session{
		StartTime:     start,
		EndTime:       &end,
		PausedSeconds: timeutil.WholeSeconds(paused),
	}, nil
}

// sessionsOf returns the sessions of a skill, limited to those that started
// after --since when it is set.
func sessionsOf(
	ctx *cli.Context,
	db store.DB,
	skillID string,
	now time.Time,
) ([]models.Session, error) {
	if !ctx.IsSet("since") {
		return db.GetSessions(skillID)
	}

	since, err := timeutil.FromStr(ctx.String("since"), now)
	if err != nil {
		return nil, err
	}

	return db.SessionsSince(skillID, since)
}

// sessionRows builds the table printed by the sessions command.
func sessionRows(sessions []models.Session, now time.Time) [][]string {
	rows := [][]string{{"#", "START", "END", "PAUSED", "DURATION"}}

	for i := range sessions {
		sess := &sessions[i]

		end := "in progress"
		if !sess.InProgress() {
			end = sess.EndTime.Local().Format(time.DateTime)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Local().Format(time.DateTime),
			end,
			timeutil.FormattedShortTime(sess.PausedSeconds),
			timeutil.FormattedShortTime(sess.DurationSeconds(now)),
		})
	}

	return rows
}

func listSessions(w io.Writer, sessions []models.Session, now time.Time) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "no sessions recorded")
		return err
	}

	ui.PrintTable(sessionRows(sessions, now), w)

	_, err := fmt.Fprintf(w, "Total: %s\n",
		ui.Green(timeutil.FormattedShortTime(models.TotalSeconds(sessions, now))),
	)

	return err
}
