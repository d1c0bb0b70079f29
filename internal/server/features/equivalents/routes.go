// Package equivalents serves course equivalency lookups.
package equivalents

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/lookup"
)

// SetupRoutes registers the lookup route.
func SetupRoutes(router chi.Router, svc *lookup.Service, logger *slog.Logger) error {
	handlers := NewHandlers(svc, logger)

	router.Post("/equivalent-courses", handlers.Lookup)

	return nil
}
