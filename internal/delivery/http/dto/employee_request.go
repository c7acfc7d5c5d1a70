package dto

import (
	"skill-manager/internal/domain"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/usecase"
)

type AddEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

func (r AddEmployeeRequest) Input() usecase.AddEmployeeInput {
	return usecase.AddEmployeeInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Title:     r.Title,
		Email:     r.Email,
		Telephone: r.Telephone,
	}
}

// AssignProjectRequest carries ids and dates as text so that a malformed
// value is reported against its field.
type AssignProjectRequest struct {
	ProjectID    string `json:"project_id"`
	Contribution string `json:"contribution"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (r AssignProjectRequest) Input() (usecase.AssignProjectInput, error) {
	pid, err := project.ParseID(r.ProjectID)
	if err != nil {
		return usecase.AssignProjectInput{}, err
	}
	start, err := domain.ParseDate("start_date", r.StartDate)
	if err != nil {
		return usecase.AssignProjectInput{}, err
	}
	end, err := domain.ParseOptionalDate("end_date", r.EndDate)
	if err != nil {
		return usecase.AssignProjectInput{}, err
	}
	return usecase.AssignProjectInput{
		ProjectID:    pid,
		Contribution: r.Contribution,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

type AssignSkillRequest struct {
	SkillID string `json:"skill_id"`
	Level   *int   `json:"level"`
}

func (r AssignSkillRequest) Input() (usecase.AssignSkillInput, error) {
	sid, err := skill.ParseID(r.SkillID)
	if err != nil {
		return usecase.AssignSkillInput{}, err
	}
	if r.Level == nil {
		return usecase.AssignSkillInput{}, domain.Invalid("level", "is required")
	}
	return usecase.AssignSkillInput{SkillID: sid, Level: *r.Level}, nil
}
