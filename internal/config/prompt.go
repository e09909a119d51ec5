package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/mastery/internal/models"
)

const asciiLogo = `
███╗   ███╗ █████╗ ███████╗████████╗███████╗██████╗ ██╗   ██╗
████╗ ████║██╔══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗╚██╗ ██╔╝
██╔████╔██║███████║███████╗   ██║   █████╗  ██████╔╝ ╚████╔╝
██║╚██╔╝██║██╔══██║╚════██║   ██║   ██╔══╝  ██╔══██╗  ╚██╔╝
██║ ╚═╝ ██║██║  ██║███████║   ██║   ███████╗██║  ██║   ██║
╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝   ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Mode         models.ProjectionMode
	PerWeek      string
	TargetHours  float64
	Notification bool
}

// WithPromptConfig returns an Option that asks for the main settings when no
// config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Notification: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Mastery for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'mastery edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Hours needed for mastery").
				Options(
					huh.NewOption("10,000 hours", float64(models.DefaultTargetHours)).
						Selected(true),
					huh.NewOption("5,000 hours", 5000.0),
					huh.NewOption("1,000 hours", 1000.0),
				).
				Value(&opts.TargetHours),
		),
		huh.NewGroup(
			huh.NewSelect[models.ProjectionMode]().
				Title("How should projections be calculated?").
				Options(
					huh.NewOption("From my recent pace", models.RecentPace).
						Selected(true),
					huh.NewOption("From a weekly target", models.TargetBased),
				).
				Value(&opts.Mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Weekly target in hours").
				Placeholder("10").
				Validate(validateWeeklyInput).
				Value(&opts.PerWeek),
		).WithHideFunc(func() bool {
			return opts.Mode != models.TargetBased
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Notify me when I reach a milestone?").
				Value(&opts.Notification),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

func validateWeeklyInput(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > hoursInAWeek {
		return errInvalidWeeklyTarget.Fmt(hoursInAWeek, s)
	}

	return nil
}

func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Projection.DefaultMode = opts.Mode
	c.Projection.TargetHours = opts.TargetHours
	c.Notifications.Enabled = opts.Notification
	c.prompted = true

	perWeek := strings.TrimSpace(opts.PerWeek)
	if perWeek == "" {
		return nil
	}

	f, err := strconv.ParseFloat(perWeek, 64)
	if err != nil {
		return errInvalidWeeklyTarget.Fmt(hoursInAWeek, perWeek)
	}

	c.Projection.TargetHoursPerWeek = f

	return nil
}
