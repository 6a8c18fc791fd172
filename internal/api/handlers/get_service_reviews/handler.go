package get_service_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonsphere/booking-service/internal/api/handlers"
	catalogService "github.com/salonsphere/booking-service/internal/service/catalog"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidServiceID = "некорректный ID услуги"
	msgSalonNotFound    = "салон не найден"
	msgServiceNotFound  = "услуга не найдена"
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

// Handle GET /api/v1/salons/{salonId}/services/{serviceId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/services/{id}/reviews - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/services/{id}/reviews - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.ListServiceReviews(r.Context(), salonID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/services/{id}/reviews - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/services/{id}/reviews - Service not found: salon_id=%d, service_id=%d",
				salonID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /salons/{id}/services/{id}/reviews - Failed to list reviews: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/services/{id}/reviews - Reviews retrieved successfully: service_id=%d, count=%d",
		serviceID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
