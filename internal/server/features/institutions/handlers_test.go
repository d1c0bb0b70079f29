package institutions

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/dataset/datasettest"
	"github.com/leapstack-labs/transfer/internal/server/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	require.NoError(t, SetupRoutes(fixture.Router, fixture.Store, fixture.Logger))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		want       []string
	}{
		{
			name:       "universities",
			target:     "/institutions?type=university",
			wantStatus: http.StatusOK,
			want:       []string{datasettest.CoastUniversity, datasettest.EmptyUniversity, datasettest.StateUniversity},
		},
		{
			name:       "community colleges",
			target:     "/institutions?type=community_college",
			wantStatus: http.StatusOK,
			want:       []string{datasettest.HarborCollege, datasettest.MountainCollege, datasettest.ValleyCollege},
		},
		{
			name:       "no type lists everything",
			target:     "/institutions",
			wantStatus: http.StatusOK,
			want: []string{
				datasettest.CoastUniversity, datasettest.EmptyUniversity, datasettest.HarborCollege,
				datasettest.MountainCollege, datasettest.StateUniversity, datasettest.ValleyCollege,
			},
		},
		{
			name:       "type is case-insensitive",
			target:     "/institutions?type=University&q=coast",
			wantStatus: http.StatusOK,
			want:       []string{datasettest.CoastUniversity},
		},
		{
			name:       "query without matches",
			target:     "/institutions?q=zzz",
			wantStatus: http.StatusOK,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := features.Do(t, fixture.Router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var got []string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		fixture := features.SetupTestFixture(t)
		require.NoError(t, SetupRoutes(fixture.Router, fixture.Store, fixture.Logger))

		rec := features.Do(t, fixture.Router, http.MethodGet, "/institutions?type=college", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown institution type")
	})

	t.Run("store failure", func(t *testing.T) {
		r := chi.NewRouter()
		require.NoError(t, SetupRoutes(r, features.BrokenDataset{}, features.SetupTestFixture(t).Logger))

		rec := features.Do(t, r, http.MethodGet, "/institutions?type=university", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"data unavailable"}`, rec.Body.String())
	})
}
