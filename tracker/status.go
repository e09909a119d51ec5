package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/mastery/internal/timeutil"
)

// Status is the state of a running tracker as written to the status file.
type Status struct {
	UpdatedAt      time.Time `json:"updated_at"`
	StartTime      time.Time `json:"start_time"`
	Skill          string    `json:"skill"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	Paused         bool      `json:"paused"`
}

// String renders the status as "skill: H:MM:SS" with a paused marker.
func (s Status) String() string {
	text := fmt.Sprintf("%s: %s", s.Skill, timeutil.FormattedTime(s.ElapsedSeconds))
	if s.Paused {
		text += " [paused]"
	}

	return text
}

// writeStatusFile must be called with the lock held.
func (t *Tracker) writeStatusFile() {
	if t.statusPath == "" || t.skill == nil {
		return
	}

	snap := t.timer.Snapshot()

	s := Status{
		Skill:          t.skill.Name,
		StartTime:      snap.StartTime,
		ElapsedSeconds: snap.ElapsedSeconds,
		Paused:         snap.Paused,
		UpdatedAt:      snap.Now,
	}

	b, err := json.Marshal(s)
	if err != nil {
		return
	}

	err = os.WriteFile(t.statusPath, b, 0o600)
	if err != nil {
		slog.Debug("unable to write status file", slog.Any("error", err))
	}
}

func (t *Tracker) removeStatusFile() {
	if t.statusPath == "" {
		return
	}

	_ = os.Remove(t.statusPath)
}

// ReadStatus reads the status file and advances the elapsed time of a
// running session to now. It returns nil if the file does not exist.
func ReadStatus(statusPath string, now time.Time) (*Status, error) {
	b, err := os.ReadFile(statusPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, err
	}

	if !s.Paused {
		s.ElapsedSeconds += timeutil.WholeSeconds(now.Sub(s.UpdatedAt))
	}

	return &s, nil
}

// ReportStatus prints the status of a tracker running in another process. It
// prints nothing if no tracker is running.
func ReportStatus(dbPath, statusPath string, w io.Writer, now time.Time) error {
	_, err := os.Stat(dbPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(dbPath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// the database is not locked, so nothing is being tracked
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, berrors.ErrTimeout) {
		return err
	}

	s, err := ReadStatus(statusPath, now)
	if err != nil || s == nil {
		return err
	}

	_, err = fmt.Fprintln(w, s.String())

	return err
}
