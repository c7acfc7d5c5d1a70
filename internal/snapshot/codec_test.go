package snapshot

import (
	"testing"
	"time"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/repository"
	"skill-manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func skillEntries(labels ...string) []store.Entry[skill.ID, skill.Skill] {
	s := repository.NewSkillStore()
	for _, l := range labels {
		s.Add(func(id skill.ID) skill.Skill { return skill.Skill{ID: id, Label: l} })
	}
	return s.Entries()
}

func TestCodec_RoundTripSkills(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
	}{
		{name: "empty", labels: nil},
		{name: "one", labels: []string{"Go"}},
		{name: "many", labels: []string{"Go", "Rust", "SQL", "Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := skillEntries(tt.labels...)

			data, err := Encode("skills", in)
			require.NoError(t, err)
			out, err := Decode[skill.ID, skill.Skill]("skills", data, skill.ParseID)
			require.NoError(t, err)

			assert.Len(t, out, len(in))
			for i := range in {
				assert.Equal(t, in[i].Key, out[i].Key)
				assert.Equal(t, in[i].Value, out[i].Value)
			}
		})
	}
}

func TestCodec_DocumentShape(t *testing.T) {
	in := skillEntries("Go", "Rust")

	data, err := Encode("skills", in)
	require.NoError(t, err)

	root := gjson.ParseBytes(data)
	require.True(t, root.IsObject())
	var keys []string
	root.ForEach(func(k, v gjson.Result) bool {
		keys = append(keys, k.String())
		assert.Equal(t, k.String(), v.Get("id").String())
		return true
	})
	assert.Equal(t, []string{in[0].Key.String(), in[1].Key.String()}, keys)
	assert.Contains(t, string(data), "\n  ")
}

func TestCodec_RoundTripEmployee(t *testing.T) {
	s := repository.NewEmployeeStore()
	end := domain.NewDate(2021, time.June, 30)
	s.Add(func(id employee.ID) employee.Employee {
		return employee.Employee{
			ID:        id,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Skills:    map[string]employee.Knowledge{"Go": {Level: 4}},
			Projects: []employee.ProjectAssignment{{
				ID:           domain.NewID[employee.ProjectAssignment](),
				Project:      project.Project{ID: domain.NewID[project.Project](), Label: "Apollo", Description: "moon"},
				Contribution: "lead",
				StartDate:    domain.NewDate(2020, time.January, 2),
				EndDate:      &end,
			}},
			LastUpdate: time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC),
		}
	})
	in := s.Entries()

	data, err := Encode("employees", in)
	require.NoError(t, err)
	out, err := Decode[employee.ID, employee.Employee]("employees", data, employee.ParseID)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, in[0].Value, out[0].Value)
	assert.Equal(t, "2020-01-02", gjson.GetBytes(data, in[0].Key.String()+".projects.0.start_date").String())
}

func TestCodec_DecodeRejects(t *testing.T) {
	good := skillEntries("Go")[0]
	other := domain.NewID[skill.Skill]()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed", doc: `{"a": `},
		{name: "empty input", doc: ``},
		{name: "array root", doc: `[]`},
		{name: "bad key", doc: `{"nope": {"id": "nope", "label": "Go"}}`},
		{name: "record not an object", doc: `{"` + good.Key.String() + `": 5}`},
		{name: "id mismatch", doc: `{"` + good.Key.String() + `": {"id": "` + other.String() + `", "label": "Go"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[skill.ID, skill.Skill]("skills", []byte(tt.doc), skill.ParseID)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrPersistence)
			var pe *domain.PersistenceError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "skills", pe.Document)
		})
	}
}

func TestCodec_DecodeEmptyObject(t *testing.T) {
	out, err := Decode[skill.ID, skill.Skill]("skills", []byte("{}\n"), skill.ParseID)

	require.NoError(t, err)
	assert.Empty(t, out)
}
