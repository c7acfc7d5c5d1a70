package usecase

import (
	"context"
	"strings"
	"time"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/pkg/validator"
	"skill-manager/internal/repository"
)

type AssignProjectInput struct {
	ProjectID    project.ID   `json:"project_id"`
	Contribution string       `json:"contribution"`
	StartDate    domain.Date  `json:"start_date"`
	EndDate      *domain.Date `json:"end_date"`
}

type AssignSkillInput struct {
	SkillID skill.ID `json:"skill_id"`
	Level   int      `json:"level" validate:"gte=0"`
}

type AssignmentUsecase interface {
	AssignProjectToEmployee(ctx context.Context, employeeID employee.ID, in AssignProjectInput) (employee.ProjectAssignment, error)
	AssignSkillToEmployee(ctx context.Context, employeeID employee.ID, in AssignSkillInput) (employee.SkillAssignment, error)
}

// Assignment joins employees with the project and skill stores. The
// employee store is always locked first, then the referenced store, so two
// assignments can never wait on each other.
type Assignment struct {
	employees repository.EmployeeRepository
	projects  repository.ProjectRepository
	skills    repository.SkillRepository
	validate  *validator.Validator
	hook      ChangeHook
	now       func() time.Time
}

func NewAssignmentUsecase(
	employees repository.EmployeeRepository,
	projects repository.ProjectRepository,
	skills repository.SkillRepository,
	validate *validator.Validator,
	hook ChangeHook,
) *Assignment {
	return &Assignment{
		employees: employees,
		projects:  projects,
		skills:    skills,
		validate:  validate,
		hook:      hook,
		now:       time.Now,
	}
}

func (u *Assignment) AssignProjectToEmployee(ctx context.Context, employeeID employee.ID, in AssignProjectInput) (employee.ProjectAssignment, error) {
	if in.ProjectID.IsZero() {
		return employee.ProjectAssignment{}, domain.Invalid("project_id", "is required")
	}
	if in.StartDate.IsZero() {
		return employee.ProjectAssignment{}, domain.Invalid("start_date", "is required")
	}
	in.Contribution = strings.TrimSpace(in.Contribution)

	now := u.now().UTC()
	var out employee.ProjectAssignment
	err := u.employees.ModifyEmployee(employeeID, func(e *employee.Employee) error {
		p, ok := u.projects.GetProject(in.ProjectID)
		if !ok {
			return domain.ErrProjectNotFound
		}

		out = employee.ProjectAssignment{
			ID:           domain.NewID[employee.ProjectAssignment](),
			Project:      p,
			Contribution: in.Contribution,
			StartDate:    in.StartDate,
		}
		if in.EndDate != nil {
			end := *in.EndDate
			out.EndDate = &end
		}
		e.Projects = append(e.Projects, out)
		e.LastUpdate = now
		return nil
	})
	if err != nil {
		return employee.ProjectAssignment{}, err
	}

	if err := notify(ctx, u.hook, EntityEmployee, ActionProjectAssigned, employeeID.String(), now); err != nil {
		return employee.ProjectAssignment{}, err
	}
	return out, nil
}

func (u *Assignment) AssignSkillToEmployee(ctx context.Context, employeeID employee.ID, in AssignSkillInput) (employee.SkillAssignment, error) {
	if in.SkillID.IsZero() {
		return employee.SkillAssignment{}, domain.Invalid("skill_id", "is required")
	}
	if err := u.validate.Struct(in); err != nil {
		return employee.SkillAssignment{}, err
	}

	now := u.now().UTC()
	var out employee.SkillAssignment
	err := u.employees.ModifyEmployee(employeeID, func(e *employee.Employee) error {
		s, ok := u.skills.GetSkill(in.SkillID)
		if !ok {
			return domain.ErrSkillNotFound
		}

		if e.Skills == nil {
			e.Skills = map[string]employee.Knowledge{}
		}
		e.Skills[s.Label] = employee.Knowledge{Level: in.Level}
		e.LastUpdate = now
		out = employee.SkillAssignment{Label: s.Label, Level: in.Level}
		return nil
	})
	if err != nil {
		return employee.SkillAssignment{}, err
	}

	if err := notify(ctx, u.hook, EntityEmployee, ActionSkillAssigned, employeeID.String(), now); err != nil {
		return employee.SkillAssignment{}, err
	}
	return out, nil
}
