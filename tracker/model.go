package tracker

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/mastery/internal/config"
	"github.com/ayoisaiah/mastery/internal/models"
)

const (
	padding  = 2
	maxWidth = 60
)

type tickMsg Tick

// Model is the live timer shown while a session is tracked.
type Model struct {
	tracker  *Tracker
	skill    *models.Skill
	summary  *Summary
	err      error
	styles   styles
	keys     keyMap
	help     help.Model
	progress progress.Model
	clock24  bool
}

// NewModel returns the timer view for the session tr is tracking for skill.
func NewModel(tr *Tracker, skill *models.Skill, cfg *config.Config) *Model {
	return &Model{
		tracker: tr,
		skill:   skill,
		keys:    defaultKeymap,
		help:    help.New(),
		styles:  newStyles(cfg.Display.DarkTheme),
		clock24: cfg.Display.TwentyFourHour,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(maxWidth),
		),
	}
}

// Summary returns the stopped session once the program has exited.
func (m *Model) Summary() *Summary {
	return m.summary
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return m.waitForTick()
}

func (m *Model) waitForTick() tea.Cmd {
	ch := m.tracker.Ticks()

	return func() tea.Msg {
		return tickMsg(<-ch)
	}
}

func (m *Model) stop() (tea.Model, tea.Cmd) {
	m.summary, m.err = m.tracker.Stop()

	return m, tea.Quit
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.togglePlay):
		err := m.tracker.Toggle()
		if err != nil {
			slog.Error("unable to toggle timer", slog.Any("error", err))
		}

		return m, nil

	case key.Matches(msg, m.keys.stop), key.Matches(msg, m.keys.quit):
		return m.stop()

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.waitForTick()

	case tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))

		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		m.help.Width = msg.Width

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}
