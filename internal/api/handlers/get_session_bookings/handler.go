package get_session_bookings

import (
	"errors"
	"net/http"

	"github.com/salonsphere/booking-service/internal/api/handlers"
	"github.com/salonsphere/booking-service/internal/api/middleware"
	bookingService "github.com/salonsphere/booking-service/internal/service/bookings"
	"github.com/salonsphere/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	req := &models.GetSessionBookingsRequest{
		SessionID: sessionID,
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetSessionBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: session=%s, count=%d",
		sessionID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
