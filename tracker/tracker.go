// Package tracker runs the practice timer for one skill at a time, persists
// its sessions and recovers sessions interrupted by a crash
package tracker

import (
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/mastery/internal/config"
	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/notify"
	"github.com/ayoisaiah/mastery/store"
	"github.com/ayoisaiah/mastery/timer"
)

// CheckpointEvery is the number of ticks between two checkpoints of the
// running session.
const CheckpointEvery = 60

// Tick is delivered on the channel returned by Ticks while a session runs.
type Tick struct {
	Skill          string
	ElapsedSeconds int
	TotalSeconds   int
}

// Summary describes a stopped session.
type Summary struct {
	Skill          *models.Skill
	Session        models.Session
	ElapsedSeconds int
	TotalSeconds   int
	// Milestone is the number of hours reached by this session, or 0
	Milestone int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the wall clock.
func WithClock(c timer.Clock) Option {
	return func(t *Tracker) {
		t.clock = c
	}
}

// WithTickInterval changes how often the timer ticks.
func WithTickInterval(d time.Duration) Option {
	return func(t *Tracker) {
		t.interval = d
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(t *Tracker) {
		t.notifier = n
	}
}

// WithStatusFile makes the tracker write its status to path on every tick.
func WithStatusFile(path string) Option {
	return func(t *Tracker) {
		t.statusPath = path
	}
}

// WithCommandRunner replaces the runner of settings.cmd.
func WithCommandRunner(fn func(cmd string) error) Option {
	return func(t *Tracker) {
		t.runCmd = fn
	}
}

// Tracker owns the single process-wide timer.
type Tracker struct {
	db         store.DB
	clock      timer.Clock
	notifier   notify.Notifier
	runCmd     func(cmd string) error
	timer      *timer.Timer
	skill      *models.Skill
	session    *models.Session
	ticks      chan Tick
	cfg        *config.Config
	statusPath string
	interval   time.Duration
	// prior is the practiced time of the skill before the current session
	prior     int
	tickCount int
	// opMu serializes Start, Pause, Resume and Stop. mu guards the fields
	// read by the tick observer and is never held while the timer halts its
	// ticker.
	opMu sync.Mutex
	mu   sync.Mutex
}

// New creates a Tracker that persists sessions to db.
func New(db store.DB, cfg *config.Config, opts ...Option) *Tracker {
	t := &Tracker{
		db:       db,
		cfg:      cfg,
		clock:    timer.SystemClock,
		interval: timer.TickInterval,
		runCmd:   runSessionCmd,
		ticks:    make(chan Tick, 1),
		notifier: &notify.Desktop{
			Enabled: cfg.Notifications.Enabled,
			Sound:   cfg.Notifications.Sound,
		},
	}

	for _, opt := range opts {
		opt(t)
	}

	t.timer = timer.New(
		timer.WithClock(t.clock),
		timer.WithInterval(t.interval),
		timer.WithObserver(t.onTick),
	)

	return t
}

// Ticks returns the channel on which the elapsed time is published. Only the
// latest tick is kept if the receiver falls behind.
func (t *Tracker) Ticks() <-chan Tick {
	return t.ticks
}

// Start begins a session for skill. A session already in progress is stopped
// first, and its summary returned.
func (t *Tracker) Start(skill *models.Skill) (*Summary, error) {
	t.opMu.Lock()
	defer t.opMu.Unlock()

	prev, err := t.stop()
	if err != nil {
		return prev, err
	}

	sessions, err := t.db.GetSessions(skill.ID)
	if err != nil {
		return prev, err
	}

	prior := models.TotalSeconds(sessions, t.clock.Now())

	t.timer.Start()

	sess := &models.Session{
		ID:        uuid.NewString(),
		SkillID:   skill.ID,
		StartTime: t.timer.StartTime(),
	}

	t.mu.Lock()

	t.skill = skill
	t.session = sess
	t.prior = prior
	t.tickCount = 0

	// the checkpoint is written before the session so that every
	// in-progress session on disk can be closed by store.RecoverActive
	err = t.checkpoint()
	if err == nil {
		err = t.db.SaveSession(sess)
	}

	if err != nil {
		t.skill, t.session = nil, nil
		t.removeStatusFile()
		t.mu.Unlock()

		t.timer.Stop()
		_ = t.db.ClearActive()

		return prev, err
	}

	t.mu.Unlock()

	slog.Info("session started",
		slog.String("skill", skill.Name),
		slog.String("session_id", sess.ID),
	)

	return prev, nil
}

// Pause pauses the running session. It reports whether anything changed.
func (t *Tracker) Pause() (bool, error) {
	t.opMu.Lock()
	defer t.opMu.Unlock()

	return t.pause()
}

// Resume resumes a paused session. It reports whether anything changed.
func (t *Tracker) Resume() (bool, error) {
	t.opMu.Lock()
	defer t.opMu.Unlock()

	return t.resume()
}

// Toggle pauses a running session or resumes a paused one.
func (t *Tracker) Toggle() error {
	t.opMu.Lock()
	defer t.opMu.Unlock()

	var err error

	if t.timer.IsPaused() {
		_, err = t.resume()
	} else {
		_, err = t.pause()
	}

	return err
}

func (t *Tracker) pause() (bool, error) {
	if !t.timer.Pause() {
		return false, nil
	}

	return true, t.Checkpoint()
}

func (t *Tracker) resume() (bool, error) {
	if !t.timer.Resume() {
		return false, nil
	}

	return true, t.Checkpoint()
}

// Stop ends the current session and saves it. It returns nil when no session
// is in progress.
func (t *Tracker) Stop() (*Summary, error) {
	t.opMu.Lock()
	defer t.opMu.Unlock()

	return t.stop()
}

func (t *Tracker) stop() (*Summary, error) {
	if !t.timer.IsRunning() {
		return nil, nil
	}

	res := t.timer.Stop()

	t.mu.Lock()

	end := res.EndTime
	t.session.EndTime = &end
	t.session.PausedSeconds = res.PausedSeconds

	sum := &Summary{
		Skill:          t.skill,
		Session:        *t.session,
		ElapsedSeconds: res.ElapsedSeconds,
		TotalSeconds:   t.prior + t.session.DurationSeconds(end),
	}

	sum.Milestone = notify.Crossed(
		t.prior,
		sum.TotalSeconds,
		t.cfg.Notifications.MilestoneHours,
	)

	t.skill, t.session = nil, nil

	t.removeStatusFile()

	t.mu.Unlock()

	err := t.db.SaveSession(&sum.Session)
	if err == nil {
		err = t.db.ClearActive()
	}

	if err != nil {
		return sum, err
	}

	slog.Info("session stopped",
		slog.String("skill", sum.Skill.Name),
		slog.Int("elapsed_seconds", sum.ElapsedSeconds),
		slog.Int("paused_seconds", sum.Session.PausedSeconds),
	)

	t.postSession(sum)

	return sum, nil
}

// Active returns the skill being tracked, or nil.
func (t *Tracker) Active() *models.Skill {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.skill
}

// Snapshot returns the state of the timer.
func (t *Tracker) Snapshot() timer.Snapshot {
	return t.timer.Snapshot()
}

// PriorSeconds returns the practiced time of the active skill before the
// current session.
func (t *Tracker) PriorSeconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.prior
}

// Checkpoint records the state of the running session so that it can be
// recovered after a crash.
func (t *Tracker) Checkpoint() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.checkpoint()
}

// checkpoint must be called with the lock held.
func (t *Tracker) checkpoint() error {
	if t.session == nil {
		return nil
	}

	snap := t.timer.Snapshot()

	active := &models.ActiveTimer{
		SessionID:     t.session.ID,
		SkillID:       t.session.SkillID,
		StartTime:     t.session.StartTime,
		LastSeen:      snap.Now,
		PausedSeconds: snap.PausedSeconds,
	}

	if snap.Paused {
		pausedAt := snap.PausedAt
		active.PausedAt = &pausedAt
	}

	t.writeStatusFile()

	return t.db.SaveActive(active)
}

func (t *Tracker) onTick(elapsed int) {
	t.mu.Lock()

	if t.skill == nil {
		t.mu.Unlock()
		return
	}

	tick := Tick{
		Skill:          t.skill.Name,
		ElapsedSeconds: elapsed,
		TotalSeconds:   t.prior + elapsed,
	}

	t.tickCount++

	if t.tickCount%CheckpointEvery == 0 {
		err := t.checkpoint()
		if err != nil {
			slog.Error("checkpoint failed", slog.Any("error", err))
		}
	}

	t.writeStatusFile()

	t.mu.Unlock()

	select {
	case <-t.ticks:
	default:
	}

	select {
	case t.ticks <- tick:
	default:
	}
}

// postSession notifies milestones and runs the configured command.
func (t *Tracker) postSession(sum *Summary) {
	if sum.Milestone > 0 {
		err := t.notifier.Milestone(sum.Skill.Name, sum.Milestone)
		if err != nil {
			slog.Error("milestone notification failed", slog.Any("error", err))
		}
	}

	if t.cfg.Settings.Cmd == "" {
		return
	}

	err := t.runCmd(t.cfg.Settings.Cmd)
	if err != nil {
		slog.Error("session command failed",
			slog.String("cmd", t.cfg.Settings.Cmd),
			slog.Any("error", err),
		)
	}
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
