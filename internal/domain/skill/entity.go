package skill

import "skill-manager/internal/domain"

type ID = domain.ID[Skill]

type Skill struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
}

func (s Skill) Key() ID { return s.ID }

func ParseID(raw string) (ID, error) {
	return domain.ParseID[Skill]("skill_id", raw)
}
