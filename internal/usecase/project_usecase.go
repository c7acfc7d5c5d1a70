package usecase

import (
	"context"
	"strings"
	"time"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/pkg/validator"
	"skill-manager/internal/repository"
	"skill-manager/internal/store"
)

type AddProjectInput struct {
	Label       string `json:"label" validate:"required"`
	Description string `json:"description"`
}

type ProjectUsecase interface {
	AddProject(ctx context.Context, in AddProjectInput) (project.Project, error)
	GetProject(ctx context.Context, id project.ID) (project.Project, error)
	DeleteProject(ctx context.Context, id project.ID) error
	FindProjects(ctx context.Context, page store.Page) ([]project.Project, error)
}

type Project struct {
	repo     repository.ProjectRepository
	validate *validator.Validator
	hook     ChangeHook
	now      func() time.Time
}

func NewProjectUsecase(repo repository.ProjectRepository, validate *validator.Validator, hook ChangeHook) *Project {
	return &Project{repo: repo, validate: validate, hook: hook, now: time.Now}
}

func (u *Project) AddProject(ctx context.Context, in AddProjectInput) (project.Project, error) {
	in.Label = strings.TrimSpace(in.Label)
	if err := u.validate.Struct(in); err != nil {
		return project.Project{}, err
	}

	created := u.repo.CreateProject(in.Label, in.Description)
	if err := notify(ctx, u.hook, EntityProject, ActionCreated, created.ID.String(), u.now()); err != nil {
		return project.Project{}, err
	}
	return created, nil
}

func (u *Project) GetProject(ctx context.Context, id project.ID) (project.Project, error) {
	p, ok := u.repo.GetProject(id)
	if !ok {
		return project.Project{}, domain.ErrProjectNotFound
	}
	return p, nil
}

func (u *Project) DeleteProject(ctx context.Context, id project.ID) error {
	if !u.repo.DeleteProject(id) {
		return nil
	}
	return notify(ctx, u.hook, EntityProject, ActionDeleted, id.String(), u.now())
}

func (u *Project) FindProjects(ctx context.Context, page store.Page) ([]project.Project, error) {
	if page.Number < 0 || page.Size < 0 {
		return nil, domain.Invalid("page", "must not be negative")
	}
	return u.repo.FindProjects(page), nil
}
