// Package app defines the mastery command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mastery/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the mastery app instance.
func Get() *cli.App {
	masteryApp := &cli.App{
		Name: "mastery",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Mastery tracks the time you spend practicing your skills and projects
		how long it will take you to reach 10,000 hours at your current pace or
		at a weekly target.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "track",
				Usage:     "Start a practice session with a live timer",
				ArgsUsage: "[skill]",
				Action:    trackAction,
			},
			{
				Name:      "log",
				Usage:     "Add a completed session in the past",
				ArgsUsage: "<skill>",
				Flags:     []cli.Flag{startFlag, endFlag, pausedFlag},
				Action:    logAction,
			},
			{
				Name:      "project",
				Usage:     "Show how long it will take to reach the goal",
				ArgsUsage: "<skill>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    projectAction,
			},
			{
				Name:      "stats",
				Usage:     "Show a summary of the practice history of a skill",
				ArgsUsage: "<skill>",
				Flags:     []cli.Flag{jsonFlag, chartFlag},
				Action:    statsAction,
			},
			{
				Name:   "skills",
				Usage:  "List all skills with their progress",
				Action: skillsAction,
			},
			{
				Name:      "sessions",
				Usage:     "List the sessions of a skill",
				ArgsUsage: "<skill>",
				Flags:     []cli.Flag{jsonFlag, sinceFlag},
				Action:    sessionsAction,
			},
			{
				Name:      "add-skill",
				Usage:     "Add a new skill",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{targetHoursFlag, modeFlag, hoursPerWeekFlag},
				Action:    addSkillAction,
			},
			{
				Name:      "delete-skill",
				Usage:     "Delete a skill and all of its sessions",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteSkillAction,
			},
			{
				Name:      "set-mode",
				Usage:     "Change how the projection of a skill is calculated",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{requiredModeFlag, hoursPerWeekFlag},
				Action:    setModeAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			disableNotificationFlag,
			sessionCmdFlag,
		},
		Action: trackAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return masteryApp
}
