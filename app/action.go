package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mastery/internal/config"
	"github.com/ayoisaiah/mastery/internal/logging"
	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/osutil"
	"github.com/ayoisaiah/mastery/internal/ui"
	"github.com/ayoisaiah/mastery/projection"
	"github.com/ayoisaiah/mastery/report"
	"github.com/ayoisaiah/mastery/stats"
	"github.com/ayoisaiah/mastery/store"
	"github.com/ayoisaiah/mastery/tracker"
)

const (
	envNoColor        = "NO_COLOR"
	envMasteryNoColor = "MASTERY_NO_COLOR"
)

var logFile io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file, prompting for the main settings on the
// first run, and applies the global flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := config.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func openStore() (*store.Client, error) {
	return openStoreAt(config.DBFilePath())
}

// openStoreAt opens the database and closes any session that a crashed
// process left in progress, so that it is not measured up to the present.
func openStoreAt(dbPath string) (*store.Client, error) {
	db, err := store.NewClient(dbPath)
	if err != nil {
		return nil, err
	}

	recovered, err := db.RecoverActive()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if recovered != nil {
		slog.Warn("recovered interrupted session",
			slog.String("session_id", recovered.ID),
			slog.String("skill_id", recovered.SkillID),
			slog.Time("end_time", recovered.End(recovered.StartTime)),
		)

		report.Recovered(recovered)
	}

	return db, nil
}

// skillArg looks up the skill named by the first argument.
func skillArg(ctx *cli.Context, db store.DB) (*models.Skill, error) {
	name := ctx.Args().First()
	if name == "" {
		return nil, errSkillRequired
	}

	return db.GetSkillByName(name)
}

// trackAction starts the live timer for a skill. The skill is picked
// interactively when no name is given.
func trackAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		if store.IsLocked(err) {
			reportRunning()
		}

		return err
	}

	defer db.Close()

	tr := tracker.New(db, cfg, tracker.WithStatusFile(config.StatusFilePath()))

	var skill *models.Skill

	if ctx.Args().Present() {
		skill, err = skillArg(ctx, db)
	} else {
		var skills []models.Skill

		skills, err = db.ListSkills()
		if err == nil {
			skill, err = tracker.PickSkill(skills)
		}
	}

	if err != nil {
		return err
	}

	_, err = tr.Start(skill)
	if err != nil {
		return err
	}

	m := tracker.NewModel(tr, skill, cfg)

	_, runErr := tea.NewProgram(m).Run()

	sum := m.Summary()
	if sum == nil {
		// the program was killed before the session was stopped
		sum, err = tr.Stop()
		if err != nil {
			return err
		}
	}

	if err := m.Err(); err != nil {
		return err
	}

	report.SessionSaved(sum)

	return runErr
}

// reportRunning prints what the tracker holding the database is timing.
func reportRunning() {
	s, err := tracker.ReadStatus(config.StatusFilePath(), time.Now())
	if err != nil || s == nil {
		return
	}

	pterm.Info.Printfln("currently tracking %s", s)
}

// logAction adds a completed session in the past.
func logAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	skill, err := skillArg(ctx, db)
	if err != nil {
		return err
	}

	now := time.Now()

	sess, err := newLoggedSession(
		ctx.String("start"),
		ctx.String("end"),
		ctx.Duration("paused"),
		now,
	)
	if err != nil {
		return err
	}

	sess.SkillID = skill.ID

	err = db.AddSession(sess, now)
	if err != nil {
		return err
	}

	slog.Info("session logged",
		slog.String("skill", skill.Name),
		slog.Time("start_time", sess.StartTime),
	)

	report.SessionAdded(skill.Name, sess.DurationSeconds(now))

	return nil
}

type projectionOutput struct {
	Skill     string `json:"skill"`
	Formatted string `json:"formatted"`
	projection.SmartProjection
}

// projectAction prints the projection for a skill.
func projectAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	skill, err := skillArg(ctx, db)
	if err != nil {
		return err
	}

	sessions, err := db.GetSessions(skill.ID)
	if err != nil {
		return err
	}

	p := projection.Calculate(skill, sessions, time.Now())

	if ctx.Bool("json") {
		return writeJSON(config.Stdout, projectionOutput{
			Skill:           skill.Name,
			Formatted:       p.Formatted(),
			SmartProjection: p,
		})
	}

	fmt.Fprintln(config.Stdout, report.Projection(skill.Name, p))

	return nil
}

// statsAction prints the practice summary of a skill.
func statsAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	skill, err := skillArg(ctx, db)
	if err != nil {
		return err
	}

	sessions, err := db.GetSessions(skill.ID)
	if err != nil {
		return err
	}

	s := stats.Compute(skill, sessions, time.Now())

	if ctx.Bool("json") {
		return s.WriteJSON(config.Stdout)
	}

	fmt.Fprint(config.Stdout, s.Text())

	if !ctx.Bool("chart") {
		return nil
	}

	chart, err := pterm.DefaultBarChart.
		WithHorizontalBarCharacter("▇").
		WithHorizontal().
		WithShowValue().
		WithBars(s.Bars()).
		Srender()
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, ui.Blue("\nWeekly breakdown (minutes)"))
	fmt.Fprint(config.Stdout, chart)

	return nil
}

// sessionsAction lists the sessions of a skill.
func sessionsAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	skill, err := skillArg(ctx, db)
	if err != nil {
		return err
	}

	sessions, err := sessionsOf(ctx, db, skill.ID, time.Now())
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		if sessions == nil {
			sessions = []models.Session{}
		}

		return writeJSON(config.Stdout, sessions)
	}

	return listSessions(config.Stdout, sessions, time.Now())
}

// statusAction prints the status of a timer running in another process.
func statusAction(_ *cli.Context) error {
	return tracker.ReportStatus(
		config.DBFilePath(),
		config.StatusFilePath(),
		config.Stdout,
		time.Now(),
	)
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// creates the file with the defaults if it does not exist yet
	_, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func beforeAction(ctx *cli.Context) error {
	err := config.InitializePaths()
	if err != nil {
		return err
	}

	logFile = logging.Setup(config.LogFilePath())

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/mastery/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MASTERY_NO_COLOR is set
	if _, exists := os.LookupEnv(envMasteryNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	slog.DebugContext(ctx.Context, "starting mastery", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting mastery")

	if logFile != nil {
		return logFile.Close()
	}

	return nil
}
