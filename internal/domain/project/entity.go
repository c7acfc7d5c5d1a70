package project

import "skill-manager/internal/domain"

type ID = domain.ID[Project]

type Project struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func (p Project) Key() ID { return p.ID }

func ParseID(raw string) (ID, error) {
	return domain.ParseID[Project]("project_id", raw)
}
