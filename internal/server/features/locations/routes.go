// Package locations serves per-institution address and coordinates.
package locations

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// SetupRoutes registers the location route.
func SetupRoutes(router chi.Router, catalog core.InstitutionCatalog, logger *slog.Logger) error {
	handlers := NewHandlers(catalog, logger)

	router.Get("/institutions/{name}/location", handlers.Get)

	return nil
}
