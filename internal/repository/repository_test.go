package repository

import (
	"errors"
	"testing"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySkillRepository_CreateGetDelete(t *testing.T) {
	repo := NewMemorySkillRepository(NewSkillStore())

	created := repo.CreateSkill("Go")
	got, ok := repo.GetSkill(created.ID)

	require.True(t, ok)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Go", got.Label)

	assert.True(t, repo.DeleteSkill(created.ID))
	assert.False(t, repo.DeleteSkill(created.ID))
	_, ok = repo.GetSkill(created.ID)
	assert.False(t, ok)
}

func TestMemoryProjectRepository_FindPage(t *testing.T) {
	repo := NewMemoryProjectRepository(NewProjectStore())
	a := repo.CreateProject("a", "")
	b := repo.CreateProject("b", "second")
	repo.CreateProject("c", "")

	assert.Equal(t, "second", b.Description)
	page := repo.FindProjects(store.Page{Number: 0, Size: 2})
	require.Len(t, page, 2)
	assert.Equal(t, a.ID, page[0].ID)
	assert.Equal(t, b.ID, page[1].ID)
}

func TestMemoryEmployeeRepository_CreateInitialisesCollections(t *testing.T) {
	repo := NewMemoryEmployeeRepository(NewEmployeeStore())

	e := repo.CreateEmployee(employee.Employee{FirstName: "Ada", LastName: "Lovelace"})

	assert.NotNil(t, e.Skills)
	assert.NotNil(t, e.Projects)
	assert.Empty(t, e.Skills)
	assert.Empty(t, e.Projects)
}

func TestMemoryEmployeeRepository_ModifyEmployee(t *testing.T) {
	repo := NewMemoryEmployeeRepository(NewEmployeeStore())
	e := repo.CreateEmployee(employee.Employee{FirstName: "Ada"})

	err := repo.ModifyEmployee(e.ID, func(cur *employee.Employee) error {
		cur.Skills["Go"] = employee.Knowledge{Level: 3}
		return nil
	})
	require.NoError(t, err)

	got, _ := repo.GetEmployee(e.ID)
	assert.Equal(t, 3, got.Skills["Go"].Level)

	boom := errors.New("boom")
	err = repo.ModifyEmployee(e.ID, func(cur *employee.Employee) error {
		cur.Skills["Rust"] = employee.Knowledge{Level: 1}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ = repo.GetEmployee(e.ID)
	assert.NotContains(t, got.Skills, "Rust")
}

func TestMemoryEmployeeRepository_ModifyMissing(t *testing.T) {
	repo := NewMemoryEmployeeRepository(NewEmployeeStore())

	called := false
	err := repo.ModifyEmployee(domain.NewID[employee.Employee](), func(*employee.Employee) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, called)
}
