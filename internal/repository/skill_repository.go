package repository

import (
	"skill-manager/internal/domain"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/store"
)

type SkillStore = store.Memory[skill.ID, skill.Skill]

type SkillRepository interface {
	CreateSkill(label string) skill.Skill
	GetSkill(id skill.ID) (skill.Skill, bool)
	DeleteSkill(id skill.ID) bool
	FindSkills(page store.Page) []skill.Skill
}

func NewSkillStore() *SkillStore {
	return store.NewMemory[skill.ID, skill.Skill](domain.NewID[skill.Skill], nil)
}

type MemorySkillRepository struct {
	store *SkillStore
}

func NewMemorySkillRepository(s *SkillStore) *MemorySkillRepository {
	return &MemorySkillRepository{store: s}
}

func (r *MemorySkillRepository) CreateSkill(label string) skill.Skill {
	return r.store.Add(func(id skill.ID) skill.Skill {
		return skill.Skill{ID: id, Label: label}
	})
}

func (r *MemorySkillRepository) GetSkill(id skill.ID) (skill.Skill, bool) {
	return r.store.Get(id)
}

func (r *MemorySkillRepository) DeleteSkill(id skill.ID) bool {
	return r.store.Delete(id)
}

func (r *MemorySkillRepository) FindSkills(page store.Page) []skill.Skill {
	return r.store.Find(page)
}
