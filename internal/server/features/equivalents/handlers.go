package equivalents

import (
	"log/slog"
	"net/http"

	"github.com/leapstack-labs/transfer/internal/lookup"
	"github.com/leapstack-labs/transfer/internal/server/features/common"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// Handlers provides the HTTP handler for equivalency lookups.
type Handlers struct {
	svc    *lookup.Service
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(svc *lookup.Service, logger *slog.Logger) *Handlers {
	return &Handlers{svc: svc, logger: logger}
}

// Lookup decodes a core.LookupRequest and responds with the flattened
// result items. No match is 200 with an empty array.
func (h *Handlers) Lookup(w http.ResponseWriter, r *http.Request) {
	var req core.LookupRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.WriteError(w, r, h.logger, err)
		return
	}

	res, err := h.svc.LookupEquivalents(r.Context(), req)
	if err != nil {
		common.WriteError(w, r, h.logger, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, res.Items())
}
