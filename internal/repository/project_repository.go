package repository

import (
	"skill-manager/internal/domain"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/store"
)

type ProjectStore = store.Memory[project.ID, project.Project]

type ProjectRepository interface {
	CreateProject(label, description string) project.Project
	GetProject(id project.ID) (project.Project, bool)
	DeleteProject(id project.ID) bool
	FindProjects(page store.Page) []project.Project
}

func NewProjectStore() *ProjectStore {
	return store.NewMemory[project.ID, project.Project](domain.NewID[project.Project], nil)
}

type MemoryProjectRepository struct {
	store *ProjectStore
}

func NewMemoryProjectRepository(s *ProjectStore) *MemoryProjectRepository {
	return &MemoryProjectRepository{store: s}
}

func (r *MemoryProjectRepository) CreateProject(label, description string) project.Project {
	return r.store.Add(func(id project.ID) project.Project {
		return project.Project{ID: id, Label: label, Description: description}
	})
}

func (r *MemoryProjectRepository) GetProject(id project.ID) (project.Project, bool) {
	return r.store.Get(id)
}

func (r *MemoryProjectRepository) DeleteProject(id project.ID) bool {
	return r.store.Delete(id)
}

func (r *MemoryProjectRepository) FindProjects(page store.Page) []project.Project {
	return r.store.Find(page)
}
