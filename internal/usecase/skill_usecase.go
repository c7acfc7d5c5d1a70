package usecase

import (
	"context"
	"strings"
	"time"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/pkg/validator"
	"skill-manager/internal/repository"
	"skill-manager/internal/store"
)

var DefaultSkillPage = store.Page{Number: 0, Size: 10}

type AddSkillInput struct {
	Label string `json:"label" validate:"required"`
}

type SkillUsecase interface {
	AddSkill(ctx context.Context, in AddSkillInput) (skill.Skill, error)
	GetSkill(ctx context.Context, id skill.ID) (skill.Skill, error)
	DeleteSkill(ctx context.Context, id skill.ID) error
	FindSkills(ctx context.Context, page store.Page) ([]skill.Skill, error)
}

type Skill struct {
	repo     repository.SkillRepository
	validate *validator.Validator
	hook     ChangeHook
	now      func() time.Time
}

func NewSkillUsecase(repo repository.SkillRepository, validate *validator.Validator, hook ChangeHook) *Skill {
	return &Skill{repo: repo, validate: validate, hook: hook, now: time.Now}
}

func (u *Skill) AddSkill(ctx context.Context, in AddSkillInput) (skill.Skill, error) {
	in.Label = strings.TrimSpace(in.Label)
	if err := u.validate.Struct(in); err != nil {
		return skill.Skill{}, err
	}

	created := u.repo.CreateSkill(in.Label)
	if err := notify(ctx, u.hook, EntitySkill, ActionCreated, created.ID.String(), u.now()); err != nil {
		return skill.Skill{}, err
	}
	return created, nil
}

func (u *Skill) GetSkill(ctx context.Context, id skill.ID) (skill.Skill, error) {
	s, ok := u.repo.GetSkill(id)
	if !ok {
		return skill.Skill{}, domain.ErrSkillNotFound
	}
	return s, nil
}

func (u *Skill) DeleteSkill(ctx context.Context, id skill.ID) error {
	if !u.repo.DeleteSkill(id) {
		return nil
	}
	return notify(ctx, u.hook, EntitySkill, ActionDeleted, id.String(), u.now())
}

func (u *Skill) FindSkills(ctx context.Context, page store.Page) ([]skill.Skill, error) {
	if page.Number < 0 || page.Size < 0 {
		return nil, domain.Invalid("page", "must not be negative")
	}
	return u.repo.FindSkills(page), nil
}
