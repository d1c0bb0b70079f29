// Package courses serves the course catalog.
package courses

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// SetupRoutes registers the course catalog routes.
func SetupRoutes(router chi.Router, catalog core.CourseCatalog, logger *slog.Logger) error {
	handlers := NewHandlers(catalog, logger)

	router.Get("/courses", handlers.List)

	return nil
}
