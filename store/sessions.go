package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/mastery/internal/models"
	"github.com/ayoisaiah/mastery/internal/timeutil"
)

// SaveSession stores sess under the bucket of its skill, keyed by its start
// time.
func (c *Client) SaveSession(sess *models.Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	return c.Update(func(tx *bolt.Tx) error {
		return saveSession(tx, sess)
	})
}

func (c *Client) AddSession(sess *models.Session, now time.Time) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket)).Bucket([]byte(sess.SkillID))
		if b != nil {
			err := b.ForEach(func(_, v []byte) error {
				var other models.Session

				err := json.Unmarshal(v, &other)
				if err != nil {
					return err
				}

				if sess.Overlaps(&other, now) {
					return ErrSessionOverlap.Fmt(
						other.StartTime.Local().Format(time.DateTime),
					)
				}

				return nil
			})
			if err != nil {
				return err
			}
		}

		return saveSession(tx, sess)
	})
}

func (c *Client) GetSessions(skillID string) ([]models.Session, error) {
	return c.SessionsSince(skillID, time.Time{})
}

func (c *Client) SessionsSince(
	skillID string,
	since time.Time,
) ([]models.Session, error) {
	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket)).Bucket([]byte(skillID))
		if b == nil {
			return nil
		}

		cur := b.Cursor()

		for k, v := cur.Seek(timeutil.ToKey(since)); k != nil; k, v = cur.Next() {
			var sess models.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

// getSession returns the session of skillID that started at start, or nil.
func getSession(
	tx *bolt.Tx,
	skillID string,
	start time.Time,
) (*models.Session, error) {
	b := tx.Bucket([]byte(sessionBucket)).Bucket([]byte(skillID))
	if b == nil {
		return nil, nil
	}

	v := b.Get(timeutil.ToKey(start))
	if v == nil {
		return nil, nil
	}

	var sess models.Session

	err := json.Unmarshal(v, &sess)
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

func saveSession(tx *bolt.Tx, sess *models.Session) error {
	if tx.Bucket([]byte(skillBucket)).Get([]byte(sess.SkillID)) == nil {
		return ErrSkillNotFound.Fmt(sess.SkillID)
	}

	b, err := tx.Bucket([]byte(sessionBucket)).
		CreateBucketIfNotExists([]byte(sess.SkillID))
	if err != nil {
		return err
	}

	return put(b, timeutil.ToKey(sess.StartTime), sess)
}
