// Package report prints the outcome of commands to the terminal
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/osutil"
	"github.com/ayoisaiah/mastery/internal/ui"
	"github.com/ayoisaiah/mastery/projection"
	"github.com/ayoisaiah/mastery/tracker"
)

// Duration renders whole seconds as "1 hour 5 minutes".
func Duration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d seconds", seconds)
	}

	d := time.Duration(seconds) * time.Second

	return durafmt.Parse(d.Truncate(time.Minute)).
		LimitToUnit("hours").
		LimitFirstN(2).
		String()
}

// SessionAdded confirms a session that was logged after the fact.
func SessionAdded(skill string, seconds int) {
	pterm.Success.Printfln(
		"logged %s of %s",
		Duration(seconds),
		ui.Highlight(skill),
	)
}

// SessionSaved prints the summary of a stopped session.
func SessionSaved(sum *tracker.Summary) {
	if sum == nil || sum.Skill == nil {
		return
	}

	pterm.Success.Printfln(
		"%s of %s saved (%.1f of %s hours)",
		Duration(sum.ElapsedSeconds),
		ui.Highlight(sum.Skill.Name),
		float64(sum.TotalSeconds)/3600,
		humanizeHours(sum.Skill.Target()),
	)

	if sum.Milestone > 0 {
		pterm.Info.Printfln(
			"milestone reached: %d hours of %s",
			sum.Milestone,
			sum.Skill.Name,
		)
	}
}

// Recovered warns that a session from a previous run was closed.
func Recovered(sess *models.Session) {
	end := sess.End(sess.StartTime)

	pterm.Warning.Printfln(
		"recovered an interrupted session started at %s (%s saved)",
		sess.StartTime.Local().Format(time.DateTime),
		Duration(sess.DurationSeconds(end)),
	)
}

// Projection renders the projection of a skill as a short block of text.
func Projection(skill string, p projection.SmartProjection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", ui.Highlight(skill))
	fmt.Fprintf(&b, "Mastery in:  %s\n", ui.Green(p.Formatted()))

	if p.Confidence == projection.Insufficient {
		return b.String()
	}

	fmt.Fprintf(&b, "Pace:        %.1f hours/week\n", p.HoursPerWeek)

	if desc := p.TrendDescription(); desc != "" {
		fmt.Fprintf(&b, "Trend:       %s %s\n", p.TrendArrow(), desc)
	}

	fmt.Fprintf(&b, "Confidence:  %s", p.Confidence)

	return b.String()
}

func humanizeHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d", int(h))
	}

	return fmt.Sprintf("%.1f", h)
}

// Error prints err without exiting.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
