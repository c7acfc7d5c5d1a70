package usecase

import (
	"context"
	"strings"
	"time"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/pkg/validator"
	"skill-manager/internal/repository"
	"skill-manager/internal/store"
)

type AddEmployeeInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telephone string `json:"telephone"`
}

type EmployeeUsecase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (employee.Employee, error)
	GetEmployee(ctx context.Context, id employee.ID) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, id employee.ID) error
	FindEmployees(ctx context.Context, page store.Page) ([]employee.Employee, error)
}

type Employee struct {
	repo     repository.EmployeeRepository
	validate *validator.Validator
	hook     ChangeHook
	now      func() time.Time
}

func NewEmployeeUsecase(repo repository.EmployeeRepository, validate *validator.Validator, hook ChangeHook) *Employee {
	return &Employee{repo: repo, validate: validate, hook: hook, now: time.Now}
}

func (u *Employee) AddEmployee(ctx context.Context, in AddEmployeeInput) (employee.Employee, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Title = strings.TrimSpace(in.Title)
	in.Email = strings.TrimSpace(in.Email)
	in.Telephone = strings.TrimSpace(in.Telephone)
	if err := u.validate.Struct(in); err != nil {
		return employee.Employee{}, err
	}

	now := u.now().UTC()
	created := u.repo.CreateEmployee(employee.Employee{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Title:      in.Title,
		Email:      in.Email,
		Telephone:  in.Telephone,
		LastUpdate: now,
	})
	if err := notify(ctx, u.hook, EntityEmployee, ActionCreated, created.ID.String(), now); err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

func (u *Employee) GetEmployee(ctx context.Context, id employee.ID) (employee.Employee, error) {
	e, ok := u.repo.GetEmployee(id)
	if !ok {
		return employee.Employee{}, domain.ErrEmployeeNotFound
	}
	return e, nil
}

func (u *Employee) DeleteEmployee(ctx context.Context, id employee.ID) error {
	if !u.repo.DeleteEmployee(id) {
		return nil
	}
	return notify(ctx, u.hook, EntityEmployee, ActionDeleted, id.String(), u.now())
}

func (u *Employee) FindEmployees(ctx context.Context, page store.Page) ([]employee.Employee, error) {
	if page.Number < 0 || page.Size < 0 {
		return nil, domain.Invalid("page", "must not be negative")
	}
	return u.repo.FindEmployees(page), nil
}
