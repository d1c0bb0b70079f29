// Package health reports whether the dataset is reachable.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/server/features/common"
)

// Pinger is satisfied by core.Dataset.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the body of GET /healthz.
type Status struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// SetupRoutes registers the health route.
func SetupRoutes(router chi.Router, ds Pinger, logger *slog.Logger) error {
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := ds.Ping(r.Context()); err != nil {
			logger.Warn("health check failed", slog.String("error", err.Error()))
			common.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable", Error: "data unavailable"})
			return
		}
		common.WriteJSON(w, http.StatusOK, Status{Status: "ok"})
	})
	return nil
}
