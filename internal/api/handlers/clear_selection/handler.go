package clear_selection

import (
	"net/http"

	"github.com/salonsphere/booking-service/internal/api/handlers"
	"github.com/salonsphere/booking-service/internal/api/middleware"
)

type Handler struct {
	store  SelectionStore
	logger Logger
}

func NewHandler(store SelectionStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle DELETE /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	if err := h.store.Delete(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /selection - Failed to clear selection: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /selection - Selection cleared: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
