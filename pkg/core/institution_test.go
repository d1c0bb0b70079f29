package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstitutionType(t *testing.T) {
	tests := []struct {
		in      string
		want    InstitutionType
		wantErr bool
	}{
		{"university", InstitutionTypeUniversity, false},
		{"Community_College", InstitutionTypeCommunityCollege, false},
		{" university ", InstitutionTypeUniversity, false},
		{"college", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInstitutionType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstitution_DisplayLocation(t *testing.T) {
	tests := []struct {
		name string
		inst Institution
		want string
	}{
		{"explicit", Institution{Location: "Walnut, CA", City: "Ignored"}, "Walnut, CA"},
		{"city and state", Institution{City: "Monterey Park", State: "CA"}, "Monterey Park, CA"},
		{"city only", Institution{City: "Walnut"}, "Walnut"},
		{"state only", Institution{State: "CA"}, "CA"},
		{"nothing", Institution{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inst.DisplayLocation())
		})
	}
}
