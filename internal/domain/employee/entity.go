package employee

import (
	"time"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/project"
)

type ID = domain.ID[Employee]

type AssignmentID = domain.ID[ProjectAssignment]

type Employee struct {
	ID         ID                   `json:"id"`
	FirstName  string               `json:"first_name"`
	LastName   string               `json:"last_name"`
	Title      string               `json:"title,omitempty"`
	Email      string               `json:"email,omitempty"`
	Telephone  string               `json:"telephone,omitempty"`
	Skills     map[string]Knowledge `json:"skills"`
	Projects   []ProjectAssignment  `json:"projects"`
	LastUpdate time.Time            `json:"last_update"`
}

// Knowledge is keyed by the skill label copied at assignment time, not by
// the skill id.
type Knowledge struct {
	Level int `json:"level"`
}

// ProjectAssignment carries a full copy of the project as it was when the
// assignment was made. Later project edits or deletes do not reach it.
type ProjectAssignment struct {
	ID           AssignmentID    `json:"id"`
	Project      project.Project `json:"project"`
	Contribution string          `json:"contribution"`
	StartDate    domain.Date     `json:"start_date"`
	EndDate      *domain.Date    `json:"end_date"`
}

type SkillAssignment struct {
	Label string `json:"label"`
	Level int    `json:"level"`
}

func (e Employee) Key() ID { return e.ID }

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Clone returns a copy that shares no maps or slices with e.
func (e Employee) Clone() Employee {
	out := e
	out.Skills = make(map[string]Knowledge, len(e.Skills))
	for label, k := range e.Skills {
		out.Skills[label] = k
	}
	out.Projects = make([]ProjectAssignment, len(e.Projects))
	for i, pa := range e.Projects {
		if pa.EndDate != nil {
			end := *pa.EndDate
			pa.EndDate = &end
		}
		out.Projects[i] = pa
	}
	return out
}

func ParseID(raw string) (ID, error) {
	return domain.ParseID[Employee]("employee_id", raw)
}
