package dataset_test

import (
	"testing"

	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/dataset/datasettest"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixture(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		fx, err := dataset.ParseFixture([]byte(`
institutions:
  - name: State University
    type: university
  - name: Valley College
    type: community_college
    city: Van Nuys
    state: CA
    latitude: 34.17
articulations:
  - receiving_institution: State University
    receiving_course: ENGL 1A
    sending_institution: Valley College
    sending_courses: [ENGL101]
`))
		require.NoError(t, err)
		require.Len(t, fx.Institutions, 2)
		require.NotNil(t, fx.Institutions[1].Latitude)
		assert.Nil(t, fx.Institutions[1].Longitude)
		assert.NoError(t, fx.Validate())
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := dataset.ParseFixture([]byte("institutions:\n  - name: X\n    kind: university\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse fixture")
	})

	t.Run("empty document", func(t *testing.T) {
		fx, err := dataset.ParseFixture(nil)
		require.NoError(t, err)
		assert.Empty(t, fx.Institutions)
	})
}

func TestFixture_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fx *dataset.Fixture)
		wantErr []string
	}{
		{
			name:   "sample is valid",
			mutate: func(*dataset.Fixture) {},
		},
		{
			name: "receiving institution must be a university",
			mutate: func(fx *dataset.Fixture) {
				fx.Articulations[0].ReceivingInstitution = datasettest.HarborCollege
			},
			wantErr: []string{`receiving institution "Harbor College" is a community_college, want university`},
		},
		{
			name: "sending institution must be a community college",
			mutate: func(fx *dataset.Fixture) {
				fx.Articulations[0].SendingInstitution = datasettest.CoastUniversity
			},
			wantErr: []string{`sending institution "Coast University" is a university, want community_college`},
		},
		{
			name: "undefined institutions",
			mutate: func(fx *dataset.Fixture) {
				fx.Articulations[0].ReceivingInstitution = "Nowhere"
				fx.Articulations[1].SendingInstitution = "Nobody"
			},
			wantErr: []string{`receiving institution "Nowhere" is not defined`, `sending institution "Nobody" is not defined`},
		},
		{
			name: "empty sending set",
			mutate: func(fx *dataset.Fixture) {
				fx.Articulations[0].SendingCourses = nil
			},
			wantErr: []string{"sending_courses must not be empty"},
		},
		{
			name: "duplicate sending course",
			mutate: func(fx *dataset.Fixture) {
				fx.Articulations[1].SendingCourses = []string{"MATH200", "MATH200"}
			},
			wantErr: []string{`sending course "MATH200" listed twice`},
		},
		{
			name: "duplicate row",
			mutate: func(fx *dataset.Fixture) {
				fx.Articulations = append(fx.Articulations, fx.Articulations[0])
			},
			wantErr: []string{"duplicates articulations[0]"},
		},
		{
			name: "bad institutions",
			mutate: func(fx *dataset.Fixture) {
				fx.Institutions = append(fx.Institutions,
					core.Institution{Name: "", Type: core.InstitutionTypeUniversity},
					core.Institution{Name: "Odd", Type: "academy"},
					core.Institution{Name: datasettest.ValleyCollege, Type: core.InstitutionTypeCommunityCollege},
				)
			},
			wantErr: []string{"name is required", `unknown institution type "academy"`, `duplicate institution "Valley College"`},
		},
		{
			name: "name shared across types",
			mutate: func(fx *dataset.Fixture) {
				fx.Institutions = append(fx.Institutions,
					core.Institution{Name: datasettest.ValleyCollege, Type: core.InstitutionTypeUniversity})
			},
			wantErr: []string{`duplicate institution "Valley College"`},
		},
		{
			name: "blank course",
			mutate: func(fx *dataset.Fixture) {
				fx.Courses = append(fx.Courses, "  ")
			},
			wantErr: []string{"identifier is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := datasettest.SampleFixture()
			tt.mutate(fx)

			err := fx.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestFixture_CourseCatalog(t *testing.T) {
	fx := datasettest.SampleFixture()
	assert.Equal(t, []string{"HIST110", "ENGL101", "MATH200", "MATH201"}, fx.CourseCatalog())
}
