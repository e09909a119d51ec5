package projection

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/mastery/internal/models"
)

const insufficientMsg = "Keep practicing to see projection"

// Formatted renders the projection for display.
func (p SmartProjection) Formatted() string {
	switch p.Confidence {
	case Insufficient:
		return insufficientMsg
	case Low:
		if p.Years > 50 {
			return "50+ years (early estimate)"
		}

		return fmt.Sprintf("%d-%d years (early estimate)", p.Years, p.YearsUpperBound)
	}

	switch {
	case p.Years > 100:
		return "100+ years at current pace"
	case p.Years > 50:
		return "50+ years at current pace"
	case p.Years == 0 && p.Months == 0:
		return "Less than a month"
	}

	var parts []string

	if p.Years > 0 {
		parts = append(parts, plural(p.Years, "year"))
	}

	if p.Months > 0 {
		parts = append(parts, plural(p.Months, "month"))
	}

	return strings.Join(parts, ", ")
}

// TrendArrow returns an arrow pointing in the direction of the trend.
func (p SmartProjection) TrendArrow() string {
	switch p.Trend {
	case Increasing:
		return "↑"
	case Steady:
		return "→"
	case Decreasing:
		return "↓"
	default:
		return ""
	}
}

// TrendDescription describes the trend in the words of the projection mode.
func (p SmartProjection) TrendDescription() string {
	if p.Mode == models.TargetBased {
		switch p.Trend {
		case Increasing:
			return "Ahead of target"
		case Steady:
			return "On target"
		case Decreasing:
			return "Behind target"
		default:
			return ""
		}
	}

	switch p.Trend {
	case Increasing:
		return "Trending up"
	case Steady:
		return "Steady pace"
	case Decreasing:
		return "Trending down"
	default:
		return ""
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
