package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mastery/internal/models"
)

const (
	barChartChar = "▇"
	barWidth     = 20
)

func humanize(seconds int) string {
	if seconds < 60 {
		return "less than a minute"
	}

	d := time.Duration(seconds) * time.Second

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}

func (s *Summary) trendText() string {
	desc := s.Projection.TrendDescription()
	if desc == "" {
		return "-"
	}

	return s.Projection.TrendArrow() + " " + desc
}

// Text renders the summary as plain text.
func (s *Summary) Text() string {
	var b strings.Builder

	fmt.Fprintln(&b, s.Skill)
	fmt.Fprintf(&b, "Practiced:    %s (%s of %s hours, %.1f%%)\n",
		humanize(s.TotalSeconds),
		formatHours(s.TotalHours),
		formatHours(s.TargetHours),
		s.PercentComplete,
	)
	fmt.Fprintf(&b, "Remaining:    %s hours\n", formatHours(s.HoursRemaining))

	if s.SessionCount > 0 {
		fmt.Fprintf(&b, "Sessions:     %d (average %s)\n",
			s.SessionCount,
			humanize(s.AverageSessionSeconds),
		)
	} else {
		fmt.Fprintln(&b, "Sessions:     0")
	}

	fmt.Fprintf(&b, "Recent pace:  %.1f hours/week\n", s.RecentPace)
	fmt.Fprintf(&b, "Projection:   %s\n", s.ProjectionText)

	if s.Projection.Mode == models.TargetBased && s.Projection.HoursPerWeek > 0 {
		fmt.Fprintf(&b, "Weekly goal:  %.1f hours\n", s.Projection.HoursPerWeek)
	}

	fmt.Fprintf(&b, "Trend:        %s\n", s.trendText())
	fmt.Fprintf(&b, "Confidence:   %s\n", s.Projection.Confidence)

	fmt.Fprintf(&b, "\nWeekly hours (last %d weeks)\n", Weeks)

	var most float64
	for _, w := range s.Weekly {
		most = max(most, w.Hours)
	}

	for _, w := range s.Weekly {
		bar := ""
		if most > 0 {
			bar = strings.Repeat(barChartChar, int(math.Round(w.Hours/most*barWidth)))
		}

		line := fmt.Sprintf("%s  %5.2f %s", w.Start.Format("Jan 02"), w.Hours, bar)

		fmt.Fprintln(&b, strings.TrimRight(line, " "))
	}

	return b.String()
}

// Bars returns the weekly totals as a pterm bar chart in minutes.
func (s *Summary) Bars() pterm.Bars {
	bars := make(pterm.Bars, 0, len(s.Weekly))

	for _, w := range s.Weekly {
		bars = append(bars, pterm.Bar{
			Label: w.Start.Format("Jan 02"),
			Value: int(math.Round(w.Hours * 60)),
		})
	}

	return bars
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

// formatHours prints whole hours without decimals.
func formatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0f", h)
	}

	return fmt.Sprintf("%.1f", h)
}
