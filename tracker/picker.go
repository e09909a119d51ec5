package tracker

import (
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/mastery/internal/models"
)

// PickSkill asks the user to choose one of skills. The first skill is picked
// without prompting when it is the only one.
func PickSkill(skills []models.Skill) (*models.Skill, error) {
	switch len(skills) {
	case 0:
		return nil, errNoSkills
	case 1:
		return &skills[0], nil
	}

	opts := make([]huh.Option[int], len(skills))
	for i := range skills {
		opts[i] = huh.NewOption(skills[i].Name, i)
	}

	var selected int

	err := huh.NewSelect[int]().
		Title("Which skill are you practicing?").
		Options(opts...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, err
	}

	return &skills[selected], nil
}
