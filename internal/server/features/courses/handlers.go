package courses

import (
	"log/slog"
	"net/http"

	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/server/features/common"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// Handlers provides HTTP handlers for the course catalog.
type Handlers struct {
	catalog core.CourseCatalog
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(catalog core.CourseCatalog, logger *slog.Logger) *Handlers {
	return &Handlers{catalog: catalog, logger: logger}
}

// List returns course identifiers as a JSON array, optionally filtered by q.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalog.ListCourses(r.Context())
	if err != nil {
		common.WriteError(w, r, h.logger, err)
		return
	}
	courses = dataset.FilterCourses(courses, r.URL.Query().Get("q"))

	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.Identifier
	}
	common.WriteJSON(w, http.StatusOK, ids)
}
