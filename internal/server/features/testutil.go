// Package features provides shared test utilities for API feature tests.
package features

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/dataset/datasettest"
	"github.com/leapstack-labs/transfer/internal/testutil"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// TestFixture holds all dependencies needed for API handler tests.
type TestFixture struct {
	Store  *dataset.Store
	Logger *slog.Logger
	Router chi.Router
}

// SetupTestFixture seeds the sample dataset into memory and returns an
// empty router for the feature under test to register on.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()
	return &TestFixture{
		Store:  datasettest.NewStore(t, datasettest.SampleFixture()),
		Logger: testutil.NewTestLogger(t),
		Router: chi.NewRouter(),
	}
}

// Do performs a request against h and returns the recorded response.
func Do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// BrokenDataset fails every read with core.ErrDataUnavailable.
type BrokenDataset struct{}

var errBroken = core.ErrDataUnavailable

// Ping implements core.Dataset.
func (BrokenDataset) Ping(context.Context) error { return errBroken }

// ListInstitutions implements core.Dataset.
func (BrokenDataset) ListInstitutions(context.Context, core.InstitutionType) ([]core.Institution, error) {
	return nil, errBroken
}

// GetInstitution implements core.Dataset.
func (BrokenDataset) GetInstitution(context.Context, string) (*core.Institution, error) {
	return nil, errBroken
}

// ListCourses implements core.Dataset.
func (BrokenDataset) ListCourses(context.Context) ([]core.Course, error) { return nil, errBroken }

// ArticulationsFor implements core.Dataset.
func (BrokenDataset) ArticulationsFor(context.Context, string) ([]core.ArticulationRow, error) {
	return nil, errBroken
}

// AllArticulations implements core.Dataset.
func (BrokenDataset) AllArticulations(context.Context) ([]core.ArticulationRow, error) {
	return nil, errBroken
}
