package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mastery/internal/config"
	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
	"github.com/ayoisaiah/mastery/internal/ui"
	"github.com/ayoisaiah/mastery/projection"
	"github.com/ayoisaiah/mastery/store"
)

func parseMode(s string) (models.ProjectionMode, error) {
	m := models.ProjectionMode(s)
	if !m.Valid() {
		return "", errInvalidMode.Fmt(s)
	}

	return m, nil
}

func validateWeeklyTarget(h float64) error {
	if h < 0 || h > timeutil.HoursInAWeek {
		return errInvalidWeeklyTarget.Fmt(h)
	}

	return nil
}

// applySkillFlags overrides the defaults of skill with the flags that were
// explicitly set.
func applySkillFlags(ctx *cli.Context, skill *models.Skill) error {
	if ctx.IsSet("target-hours") {
		h := ctx.Float64("target-hours")
		if !(h > 0) {
			return errInvalidTargetHours.Fmt(h)
		}

		skill.TargetHours = h
	}

	if ctx.IsSet("mode") {
		m, err := parseMode(ctx.String("mode"))
		if err != nil {
			return err
		}

		skill.ProjectionMode = m
	}

	if ctx.IsSet("hours-per-week") {
		h := ctx.Float64("hours-per-week")
		if err := validateWeeklyTarget(h); err != nil {
			return err
		}

		if h == 0 {
			skill.TargetHoursPerWeek = nil
		} else {
			skill.TargetHoursPerWeek = &h
		}
	}

	return nil
}

func warnMissingWeeklyTarget(skill *models.Skill) {
	if skill.ProjectionMode == models.TargetBased && skill.WeeklyTarget() == 0 {
		pterm.Warning.Printfln(
			"%s has no weekly target; projections will use the recent pace until one is set with --hours-per-week",
			skill.Name,
		)
	}
}

func addSkillAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return errSkillRequired
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	skill := cfg.NewSkill(name)
	skill.CreatedAt = time.Now()

	err = applySkillFlags(ctx, &skill)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	err = db.CreateSkill(&skill)
	if err != nil {
		return err
	}

	slog.Info("skill created",
		slog.String("id", skill.ID),
		slog.String("name", skill.Name),
	)

	pterm.Success.Printfln("added %s", ui.Highlight(skill.Name))

	warnMissingWeeklyTarget(&skill)

	return nil
}

func deleteSkillAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	skill, err := skillArg(ctx, db)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		confirm := false

		err = huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s and all of its sessions?", skill.Name)).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirm).
			Run()
		if err != nil {
			return err
		}

		if !confirm {
			return nil
		}
	}

	err = db.DeleteSkill(skill.ID)
	if err != nil {
		return err
	}

	slog.Info("skill deleted", slog.String("id", skill.ID))

	pterm.Success.Printfln("deleted %s", ui.Highlight(skill.Name))

	return nil
}

func setModeAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	skill, err := skillArg(ctx, db)
	if err != nil {
		return err
	}

	err = applySkillFlags(ctx, skill)
	if err != nil {
		return err
	}

	err = db.UpdateSkill(skill)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"%s now uses the %s projection",
		ui.Highlight(skill.Name),
		skill.ProjectionMode,
	)

	warnMissingWeeklyTarget(skill)

	return nil
}

// skillRows builds the table printed by the skills command.
func skillRows(db store.DB, skills []models.Skill, now time.Time) ([][]string, error) {
	rows := [][]string{{"#", "NAME", "PRACTICED", "TARGET", "MODE", "PROJECTION"}}

	for i := range skills {
		skill := &skills[i]

		sessions, err := db.GetSessions(skill.ID)
		if err != nil {
			return nil, err
		}

		total := models.TotalSeconds(sessions, now)
		p := projection.Calculate(skill, sessions, now)

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			skill.Name,
			timeutil.FormattedShortTime(total),
			fmt.Sprintf("%gh", skill.Target()),
			string(skill.ProjectionMode),
			p.Formatted(),
		})
	}

	return rows, nil
}

func skillsAction(_ *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	skills, err := db.ListSkills()
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		pterm.Info.Println("no skills yet; add one with 'mastery add-skill <name>'")
		return nil
	}

	rows, err := skillRows(db, skills, time.Now())
	if err != nil {
		return err
	}

	ui.PrintTable(rows, config.Stdout)

	return nil
}
