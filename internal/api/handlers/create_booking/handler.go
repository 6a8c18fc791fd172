package create_booking

import (
	"errors"
	"net/http"

	"github.com/salonsphere/booking-service/internal/api/handlers"
	"github.com/salonsphere/booking-service/internal/api/middleware"
	createBooking "github.com/salonsphere/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgSalonNotFound       = "салон не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgSelectionNotFound   = "сначала выберите временные слоты"
	msgSelectionIncomplete = "выбор слотов не завершен"
	msgSlotNotAvailable    = "выбранный временной слот уже занят"
	msgInvalidBookingDate  = "некорректная дата бронирования"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
	msgInvalidCustomerData = "некорректные контактные данные клиента"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: session=%s, salon_id=%d", sessionID, req.SalonID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSalonNotFound):
			h.logger.Warn("POST /bookings - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: salon_id=%d, service_id=%d", req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSelectionNotFound):
			h.logger.Warn("POST /bookings - No selection: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSelectionNotFound)

		case errors.Is(err, createBooking.ErrSelectionIncomplete):
			h.logger.Warn("POST /bookings - Selection incomplete: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSelectionIncomplete)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid customer data: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidCustomerData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: session=%s, salon_id=%d, error=%v",
				sessionID, req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, code=%s, session=%s",
		result.Booking.ID, result.Booking.ConfirmationCode, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
