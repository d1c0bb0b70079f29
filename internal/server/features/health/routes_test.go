package health

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/server/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		fixture := features.SetupTestFixture(t)
		require.NoError(t, SetupRoutes(fixture.Router, fixture.Store, fixture.Logger))

		rec := features.Do(t, fixture.Router, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("unavailable", func(t *testing.T) {
		r := chi.NewRouter()
		require.NoError(t, SetupRoutes(r, features.BrokenDataset{}, features.SetupTestFixture(t).Logger))

		rec := features.Do(t, r, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","error":"data unavailable"}`, rec.Body.String())
	})
}
