package store

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/mastery/internal/models"
)

func (c *Client) CreateSkill(skill *models.Skill) error {
	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return errEmptySkillName
	}

	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}

	return c.Update(func(tx *bolt.Tx) error {
		existing, err := findByName(tx, skill.Name)
		if err != nil {
			return err
		}

		if existing != nil {
			return ErrSkillExists.Fmt(existing.Name)
		}

		return put(tx.Bucket([]byte(skillBucket)), []byte(skill.ID), skill)
	})
}

func (c *Client) GetSkill(id string) (*models.Skill, error) {
	var skill *models.Skill

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(skillBucket)).Get([]byte(id))
		if v == nil {
			return ErrSkillNotFound.Fmt(id)
		}

		skill = &models.Skill{}

		return json.Unmarshal(v, skill)
	})

	return skill, err
}

// GetSkillByName finds a skill by name, ignoring case.
func (c *Client) GetSkillByName(name string) (*models.Skill, error) {
	var skill *models.Skill

	err := c.View(func(tx *bolt.Tx) error {
		var err error

		skill, err = findByName(tx, strings.TrimSpace(name))
		if err != nil {
			return err
		}

		if skill == nil {
			return ErrSkillNotFound.Fmt(name)
		}

		return nil
	})

	return skill, err
}

func (c *Client) ListSkills() ([]models.Skill, error) {
	var skills []models.Skill

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(skillBucket)).ForEach(func(_, v []byte) error {
			var s models.Skill

			err := json.Unmarshal(v, &s)
			if err != nil {
				return err
			}

			skills = append(skills, s)

			return nil
		})
	})

	slices.SortFunc(skills, func(a, b models.Skill) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})

	return skills, err
}

func (c *Client) UpdateSkill(skill *models.Skill) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(skillBucket))

		if b.Get([]byte(skill.ID)) == nil {
			return ErrSkillNotFound.Fmt(skill.ID)
		}

		existing, err := findByName(tx, skill.Name)
		if err != nil {
			return err
		}

		if existing != nil && existing.ID != skill.ID {
			return ErrSkillExists.Fmt(existing.Name)
		}

		return put(b, []byte(skill.ID), skill)
	})
}

func (c *Client) DeleteSkill(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(skillBucket))

		if b.Get([]byte(id)) == nil {
			return ErrSkillNotFound.Fmt(id)
		}

		sessions := tx.Bucket([]byte(sessionBucket))
		if sessions.Bucket([]byte(id)) != nil {
			err := sessions.DeleteBucket([]byte(id))
			if err != nil {
				return err
			}
		}

		active, err := getActive(tx)
		if err != nil {
			return err
		}

		if active != nil && active.SkillID == id {
			err = tx.Bucket([]byte(activeBucket)).Delete(activeKey)
			if err != nil {
				return err
			}
		}

		return b.Delete([]byte(id))
	})
}

func findByName(tx *bolt.Tx, name string) (*models.Skill, error) {
	var found *models.Skill

	err := tx.Bucket([]byte(skillBucket)).ForEach(func(_, v []byte) error {
		if found != nil {
			return nil
		}

		var s models.Skill

		err := json.Unmarshal(v, &s)
		if err != nil {
			return err
		}

		if strings.EqualFold(s.Name, name) {
			found = &s
		}

		return nil
	})

	return found, err
}
