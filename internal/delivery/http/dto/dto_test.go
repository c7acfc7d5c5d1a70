package dto

import (
	"testing"

	"skill-manager/internal/domain"
	"skill-manager/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	def := store.Page{Number: 0, Size: 10}

	tests := []struct {
		name       string
		page, size string
		want       store.Page
		wantErr    bool
	}{
		{name: "defaults", want: def},
		{name: "both", page: "2", size: "5", want: store.Page{Number: 2, Size: 5}},
		{name: "size zero", size: "0", want: store.Page{Number: 0, Size: 0}},
		{name: "garbage page", page: "x", wantErr: true},
		{name: "negative size", size: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePage(tt.page, tt.size, def)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignProjectRequest_Input(t *testing.T) {
	pid := uuid.NewString()

	in, err := AssignProjectRequest{ProjectID: pid, Contribution: "dev", StartDate: "2020-01-01"}.Input()
	require.NoError(t, err)
	assert.Equal(t, pid, in.ProjectID.String())
	assert.Equal(t, "2020-01-01", in.StartDate.String())
	assert.Nil(t, in.EndDate)

	in, err = AssignProjectRequest{ProjectID: pid, StartDate: "2020-01-01", EndDate: "2019-12-31"}.Input()
	require.NoError(t, err)
	require.NotNil(t, in.EndDate)
	assert.Equal(t, "2019-12-31", in.EndDate.String())

	_, err = AssignProjectRequest{ProjectID: pid, StartDate: "01/01/2020"}.Input()
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "start_date", ve.Field)

	_, err = AssignProjectRequest{ProjectID: "nope", StartDate: "2020-01-01"}.Input()
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "project_id", ve.Field)
}

func TestAssignSkillRequest_Input(t *testing.T) {
	level := 3
	sid := uuid.NewString()

	in, err := AssignSkillRequest{SkillID: sid, Level: &level}.Input()
	require.NoError(t, err)
	assert.Equal(t, 3, in.Level)

	_, err = AssignSkillRequest{SkillID: sid}.Input()
	assert.ErrorIs(t, err, domain.ErrValidation)
}
