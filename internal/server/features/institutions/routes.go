// Package institutions serves the institution catalog.
package institutions

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// SetupRoutes registers the institution catalog routes.
func SetupRoutes(router chi.Router, catalog core.InstitutionCatalog, logger *slog.Logger) error {
	handlers := NewHandlers(catalog, logger)

	router.Get("/institutions", handlers.List)

	return nil
}
