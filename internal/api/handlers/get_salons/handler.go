package get_salons

import (
	"net/http"

	"github.com/salonsphere/booking-service/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSalons(r.Context())
	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons - Salons retrieved successfully: count=%d", len(result.Salons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
