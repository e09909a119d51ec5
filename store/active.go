package store

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
)

func (c *Client) SaveActive(active *models.ActiveTimer) error {
	return c.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket([]byte(activeBucket)), activeKey, active)
	})
}

func (c *Client) GetActive() (*models.ActiveTimer, error) {
	var active *models.ActiveTimer

	err := c.View(func(tx *bolt.Tx) error {
		var err error

		active, err = getActive(tx)

		return err
	})

	return active, err
}

func (c *Client) ClearActive() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(activeBucket)).Delete(activeKey)
	})
}

func getActive(tx *bolt.Tx) (*models.ActiveTimer, error) {
	v := tx.Bucket([]byte(activeBucket)).Get(activeKey)
	if v == nil {
		return nil, nil
	}

	var active models.ActiveTimer

	err := json.Unmarshal(v, &active)
	if err != nil {
		return nil, err
	}

	return &active, nil
}

// RecoverActive closes the session that a crashed process left in progress.
// The session ends at the last checkpoint and a pause that was still open
// counts as paused time. The checkpoint is removed in the same transaction.
// It returns nil when there was nothing to recover. It must only be called
// while no tracker is running, which holding the database lock guarantees.
func (c *Client) RecoverActive() (*models.Session, error) {
	var recovered *models.Session

	err := c.Update(func(tx *bolt.Tx) error {
		active, err := getActive(tx)
		if err != nil || active == nil {
			return err
		}

		err = tx.Bucket([]byte(activeBucket)).Delete(activeKey)
		if err != nil {
			return err
		}

		sess, err := getSession(tx, active.SkillID, active.StartTime)
		if err != nil {
			return err
		}

		if sess == nil || sess.ID != active.SessionID || !sess.InProgress() {
			return nil
		}

		end := active.LastSeen
		if end.Before(sess.StartTime) {
			end = sess.StartTime
		}

		paused := active.PausedSeconds
		if active.PausedAt != nil {
			paused += timeutil.WholeSeconds(end.Sub(*active.PausedAt))
		}

		sess.EndTime = &end
		sess.PausedSeconds = paused

		recovered = sess

		return saveSession(tx, sess)
	})
	if err != nil {
		return nil, err
	}

	return recovered, nil
}
