// Package router sets up HTTP routes for the API server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/lookup"
	"github.com/leapstack-labs/transfer/internal/server/features/common"
	coursesFeature "github.com/leapstack-labs/transfer/internal/server/features/courses"
	equivalentsFeature "github.com/leapstack-labs/transfer/internal/server/features/equivalents"
	healthFeature "github.com/leapstack-labs/transfer/internal/server/features/health"
	institutionsFeature "github.com/leapstack-labs/transfer/internal/server/features/institutions"
	locationsFeature "github.com/leapstack-labs/transfer/internal/server/features/locations"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// SetupRoutes configures all routes for the API server.
func SetupRoutes(router chi.Router, ds core.Dataset, logger *slog.Logger) error {
	svc := lookup.New(ds, logger)

	if err := healthFeature.SetupRoutes(router, ds, logger); err != nil {
		return err
	}

	if err := institutionsFeature.SetupRoutes(router, ds, logger); err != nil {
		return err
	}

	if err := locationsFeature.SetupRoutes(router, ds, logger); err != nil {
		return err
	}

	if err := coursesFeature.SetupRoutes(router, ds, logger); err != nil {
		return err
	}

	if err := equivalentsFeature.SetupRoutes(router, svc, logger); err != nil {
		return err
	}

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusNotFound, common.ErrorResponse{Error: "not found"})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusMethodNotAllowed, common.ErrorResponse{Error: "method not allowed"})
	})

	return nil
}
