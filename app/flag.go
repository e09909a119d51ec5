package app

import (
	"github.com/urfave/cli/v2"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "no-notify",
		Usage: "Disable milestone notifications",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each session",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	chartFlag = &cli.BoolFlag{
		Name:  "chart",
		Usage: "Also draw the weekly totals as a bar chart",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list sessions that started after this time (e.g. '2 weeks ago')",
	}

	startFlag = &cli.StringFlag{
		Name:     "start",
		Aliases:  []string{"s"},
		Usage:    "When the session started (e.g. '2 hours ago' or '2024-03-04 18:00')",
		Required: true,
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "When the session ended",
		Value:   "now",
	}

	pausedFlag = &cli.DurationFlag{
		Name:    "paused",
		Aliases: []string{"p"},
		Usage:   "How long the session was paused (e.g. 10m)",
	}

	targetHoursFlag = &cli.Float64Flag{
		Name:  "target-hours",
		Usage: "Hours needed to master the skill (default: projection.target_hours)",
	}

	modeFlag = &cli.StringFlag{
		Name:  "mode",
		Usage: "Projection mode: recent_pace or target_based (default: projection.default_mode)",
	}

	requiredModeFlag = &cli.StringFlag{
		Name:     "mode",
		Usage:    "Projection mode: recent_pace or target_based",
		Required: true,
	}

	hoursPerWeekFlag = &cli.Float64Flag{
		Name:  "hours-per-week",
		Usage: "Weekly practice target used in target_based mode",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)
