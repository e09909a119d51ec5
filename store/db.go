package store

import (
	"time"

	"github.com/ayoisaiah/mastery/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// CreateSkill saves a new skill. Names are unique regardless of case.
	CreateSkill(skill *models.Skill) error
	GetSkill(id string) (*models.Skill, error)
	GetSkillByName(name string) (*models.Skill, error)
	// ListSkills returns every skill sorted by name
	ListSkills() ([]models.Skill, error)
	UpdateSkill(skill *models.Skill) error
	// DeleteSkill deletes a skill together with its sessions
	DeleteSkill(id string) error
	// SaveSession creates or overwrites a session
	SaveSession(sess *models.Session) error
	// AddSession saves a completed session after checking that it does not
	// overlap any other session of the same skill
	AddSession(sess *models.Session, now time.Time) error
	// GetSessions returns all sessions of a skill in chronological order
	GetSessions(skillID string) ([]models.Session, error)
	// SessionsSince returns the sessions of a skill that started at or after
	// since
	SessionsSince(skillID string, since time.Time) ([]models.Session, error)
	// SaveActive stores the checkpoint of the running session
	SaveActive(active *models.ActiveTimer) error
	// GetActive returns the stored checkpoint or nil if there is none
	GetActive() (*models.ActiveTimer, error)
	ClearActive() error
	// RecoverActive closes the session left in progress by a process that
	// did not stop it, and returns it
	RecoverActive() (*models.Session, error)
	// Close ends the database connection
	Close() error
}
