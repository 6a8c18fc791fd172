package select_time_slot

import (
	"errors"
	"net/http"

	"github.com/salonsphere/booking-service/internal/api/handlers"
	"github.com/salonsphere/booking-service/internal/api/middleware"
	selectTimeSlot "github.com/salonsphere/booking-service/internal/usecase/select_time_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSalonNotFound      = "салон не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgSalonClosed        = "салон закрыт в выбранную дату"
	msgSlotNotFound       = "слот не найден в сетке дня"
	msgNotEnoughSlots     = "недостаточно свободных слотов подряд для этой услуги"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase SelectTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selection/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /selection/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectTimeSlot.ErrSalonNotFound):
			h.logger.Warn("POST /selection/slots - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, selectTimeSlot.ErrServiceNotFound):
			h.logger.Warn("POST /selection/slots - Service not found: salon_id=%d, service_id=%d",
				req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, selectTimeSlot.ErrSalonClosed):
			h.logger.Warn("POST /selection/slots - Salon closed: salon_id=%d, date=%s", req.SalonID, req.Date)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, selectTimeSlot.ErrSlotNotFound):
			h.logger.Warn("POST /selection/slots - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, selectTimeSlot.ErrInsufficientConsecutiveSlots):
			h.logger.Warn("POST /selection/slots - Not enough consecutive slots: session=%s, slot_id=%s",
				sessionID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughSlots)

		case errors.Is(err, selectTimeSlot.ErrInvalidDate):
			h.logger.Warn("POST /selection/slots - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, selectTimeSlot.ErrDateTooFarInFuture):
			h.logger.Warn("POST /selection/slots - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, selectTimeSlot.ErrInvalidInput):
			h.logger.Warn("POST /selection/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /selection/slots - Failed to select slot: session=%s, slot_id=%s, error=%v",
				sessionID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /selection/slots - Selection updated: session=%s, state=%s, slots=%d",
		sessionID, result.State, len(result.SlotIDs))
	handlers.RespondJSON(w, http.StatusOK, response)
}
