package locations

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/transfer/internal/server/features/common"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// Handlers provides the HTTP handler for institution locations.
type Handlers struct {
	catalog core.InstitutionCatalog
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(catalog core.InstitutionCatalog, logger *slog.Logger) *Handlers {
	return &Handlers{catalog: catalog, logger: logger}
}

// Get returns the location of the institution named in the path.
// Unknown names are 404.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// chi matches on RawPath when it is set, leaving the param escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}

	inst, err := h.catalog.GetInstitution(r.Context(), name)
	if err != nil {
		common.WriteError(w, r, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, NewResponse(inst))
}
