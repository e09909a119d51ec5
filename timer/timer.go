// Package timer measures the elapsed time of a single practice session while
// excluding the intervals during which it was paused
package timer

import (
	"sync"
	"time"

	"github.com/ayoisaiah/mastery/internal/timeutil"
)

// TickInterval is how often the elapsed time is recomputed while running.
const TickInterval = time.Second

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Result describes a stopped session.
type Result struct {
	StartTime      time.Time
	EndTime        time.Time
	ElapsedSeconds int
	PausedSeconds  int
}

// Snapshot is a consistent view of the timer at a single instant.
type Snapshot struct {
	Now       time.Time
	StartTime time.Time
	// PausedAt is the zero time unless Paused is set
	PausedAt time.Time
	// PausedSeconds excludes the open pause interval
	PausedSeconds  int
	ElapsedSeconds int
	Running        bool
	Paused         bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithInterval changes how often the elapsed time is recomputed.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		t.interval = d
	}
}

// WithObserver registers fn to be called with the elapsed seconds after every
// tick. It runs on the ticker goroutine and must not call back into the Timer.
func WithObserver(fn func(elapsed int)) Option {
	return func(t *Timer) {
		t.observer = fn
	}
}

// Timer is a stopwatch with pause support. Its zero value is not usable; use
// New. All methods are safe for concurrent use.
type Timer struct {
	startTime   time.Time
	pauseStart  time.Time
	clock       Clock
	observer    func(elapsed int)
	stopTick    chan struct{}
	tickDone    chan struct{}
	interval    time.Duration
	totalPaused time.Duration
	elapsed     int
	mu          sync.Mutex
	running     bool
	paused      bool
}

// New creates a stopped timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:    SystemClock,
		interval: TickInterval,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start begins timing a new session. It reports false and does nothing if the
// timer is already running.
func (t *Timer) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return false
	}

	t.startTime = t.clock.Now()
	t.totalPaused = 0
	t.elapsed = 0
	t.pauseStart = time.Time{}
	t.running = true
	t.paused = false

	t.startTicking()

	return true
}

// Pause freezes the elapsed time. It reports false unless the timer was
// running and not already paused.
func (t *Timer) Pause() bool {
	t.mu.Lock()

	if !t.running || t.paused {
		t.mu.Unlock()
		return false
	}

	now := t.clock.Now()
	t.elapsed = t.elapsedAt(now)
	t.pauseStart = now
	t.paused = true

	done := t.haltTicking()

	t.mu.Unlock()

	<-done

	return true
}

// Resume continues a paused session. It reports false unless the timer was
// paused.
func (t *Timer) Resume() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || !t.paused {
		return false
	}

	t.foldPause(t.clock.Now())
	t.paused = false

	t.startTicking()

	return true
}

// Stop ends the session and resets the timer. An open pause interval is
// counted as paused time. Stopping a stopped timer returns a zero Result.
func (t *Timer) Stop() Result {
	t.mu.Lock()

	if !t.running {
		t.mu.Unlock()
		return Result{}
	}

	now := t.clock.Now()

	var done <-chan struct{}

	if t.paused {
		t.foldPause(now)
	} else {
		t.elapsed = t.elapsedAt(now)
		done = t.haltTicking()
	}

	// the paused total absorbs the sub-second remainder so that
	// EndTime - StartTime - PausedSeconds floors to ElapsedSeconds
	paused := timeutil.WholeSeconds(now.Sub(t.startTime)) - t.elapsed
	if paused < 0 {
		paused = 0
	}

	res := Result{
		StartTime:      t.startTime,
		EndTime:        now,
		ElapsedSeconds: t.elapsed,
		PausedSeconds:  paused,
	}

	t.reset()

	t.mu.Unlock()

	if done != nil {
		<-done
	}

	return res
}

// Elapsed returns the elapsed seconds as of the last tick, pause or stop.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.elapsed
}

// PausedDuration returns the total paused time in whole seconds, including
// the current pause if the timer is paused.
func (t *Timer) PausedDuration() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := t.totalPaused
	if t.paused {
		total += t.clock.Now().Sub(t.pauseStart)
	}

	return timeutil.WholeSeconds(total)
}

// Snapshot returns the state of the timer as of now.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()

	snap := Snapshot{
		Now:            now,
		StartTime:      t.startTime,
		PausedAt:       t.pauseStart,
		PausedSeconds:  timeutil.WholeSeconds(t.totalPaused),
		ElapsedSeconds: t.elapsed,
		Running:        t.running,
		Paused:         t.paused,
	}

	if t.running && !t.paused {
		snap.ElapsedSeconds = t.elapsedAt(now)
	}

	return snap
}

// StartTime returns the instant the current session started. It is the zero
// time when the timer is stopped.
func (t *Timer) StartTime() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.startTime
}

// PausedAt returns the instant the current pause began, and false when the
// timer is not paused.
func (t *Timer) PausedAt() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.pauseStart, t.paused
}

// IsRunning reports whether a session is being tracked, paused or not.
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// IsPaused reports whether the current session is paused.
func (t *Timer) IsPaused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.paused
}

// tick recomputes the elapsed time and notifies the observer.
func (t *Timer) tick() {
	t.mu.Lock()

	if !t.running || t.paused {
		t.mu.Unlock()
		return
	}

	t.elapsed = t.elapsedAt(t.clock.Now())
	elapsed := t.elapsed
	observer := t.observer

	t.mu.Unlock()

	if observer != nil {
		observer(elapsed)
	}
}

// elapsedAt must be called with the lock held.
func (t *Timer) elapsedAt(now time.Time) int {
	return timeutil.WholeSeconds(now.Sub(t.startTime) - t.totalPaused)
}

// foldPause must be called with the lock held.
func (t *Timer) foldPause(now time.Time) {
	if d := now.Sub(t.pauseStart); d > 0 {
		t.totalPaused += d
	}

	t.pauseStart = time.Time{}
}

// reset must be called with the lock held and the ticker halted.
func (t *Timer) reset() {
	t.startTime = time.Time{}
	t.pauseStart = time.Time{}
	t.totalPaused = 0
	t.elapsed = 0
	t.running = false
	t.paused = false
}

// startTicking must be called with the lock held.
func (t *Timer) startTicking() {
	stop := make(chan struct{})
	done := make(chan struct{})

	t.stopTick = stop
	t.tickDone = done

	go func() {
		defer close(done)

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.tick()
			}
		}
	}()
}

// haltTicking must be called with the lock held. The caller waits on the
// returned channel after releasing the lock, since a pending tick may be
// blocked on it.
func (t *Timer) haltTicking() <-chan struct{} {
	done := t.tickDone

	if t.stopTick != nil {
		close(t.stopTick)
	}

	t.stopTick = nil
	t.tickDone = nil

	if done == nil {
		closed := make(chan struct{})
		close(closed)

		return closed
	}

	return done
}
