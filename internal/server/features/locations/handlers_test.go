package locations

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/server/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	require.NoError(t, SetupRoutes(fixture.Router, fixture.Store, fixture.Logger))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "full record",
			target:     "/institutions/Valley%20College/location",
			wantStatus: http.StatusOK,
			wantJSON: `{"name":"Valley College","type":"community_college","location":"Van Nuys, CA",
				"address":"5800 Fulton Ave","city":"Van Nuys","state":"CA","zip_code":"91401",
				"latitude":34.1761,"longitude":-118.4419}`,
		},
		{
			name:       "no coordinates",
			target:     "/institutions/Coast%20University/location",
			wantStatus: http.StatusOK,
			wantJSON: `{"name":"Coast University","type":"university","location":"Long Beach, CA",
				"address":"","city":"","state":"","zip_code":"","latitude":null,"longitude":null}`,
		},
		{
			name:       "unknown institution",
			target:     "/institutions/Nowhere/location",
			wantStatus: http.StatusNotFound,
			wantJSON:   `{"error":"not found: institution \"Nowhere\""}`,
		},
		{
			name:       "escaped percent is decoded once",
			target:     "/institutions/Valle%2579%20College/location",
			wantStatus: http.StatusNotFound,
			wantJSON:   `{"error":"not found: institution \"Valle%79 College\""}`,
		},
		{
			name:       "escaped slash",
			target:     "/institutions/Valley%2FCollege/location",
			wantStatus: http.StatusNotFound,
			wantJSON:   `{"error":"not found: institution \"Valley/College\""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := features.Do(t, fixture.Router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantJSON, rec.Body.String())
		})
	}
}

func TestGet_StoreFailure(t *testing.T) {
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, features.BrokenDataset{}, features.SetupTestFixture(t).Logger))

	rec := features.Do(t, r, http.MethodGet, "/institutions/Valley%20College/location", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
