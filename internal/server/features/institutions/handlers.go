package institutions

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/server/features/common"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// Handlers provides HTTP handlers for the institution catalog.
type Handlers struct {
	catalog core.InstitutionCatalog
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(catalog core.InstitutionCatalog, logger *slog.Logger) *Handlers {
	return &Handlers{catalog: catalog, logger: logger}
}

// List returns institution names as a JSON array.
//
//	GET /institutions?type=university&q=state
//
// type is optional and must name a known institution type. q filters names
// by case-insensitive substring.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	var typ core.InstitutionType
	if raw := r.URL.Query().Get("type"); strings.TrimSpace(raw) != "" {
		parsed, err := core.ParseInstitutionType(raw)
		if err != nil {
			common.WriteError(w, r, h.logger, err)
			return
		}
		typ = parsed
	}

	insts, err := h.catalog.ListInstitutions(r.Context(), typ)
	if err != nil {
		common.WriteError(w, r, h.logger, err)
		return
	}
	insts = dataset.FilterInstitutions(insts, r.URL.Query().Get("q"))

	names := make([]string, len(insts))
	for i, inst := range insts {
		names[i] = inst.Name
	}
	common.WriteJSON(w, http.StatusOK, names)
}
