package get_selection

import (
	"errors"
	"net/http"

	"github.com/salonsphere/booking-service/internal/api/handlers"
	"github.com/salonsphere/booking-service/internal/api/middleware"
	"github.com/salonsphere/booking-service/internal/domain"
	selectionStore "github.com/salonsphere/booking-service/internal/infra/cache/selection"
)

// SelectionResponse HTTP response model
type SelectionResponse struct {
	State         string   `json:"state"`
	SalonID       int64    `json:"salonId,omitempty"`
	ServiceID     int64    `json:"serviceId,omitempty"`
	Date          string   `json:"date,omitempty"`
	RequiredSlots int      `json:"requiredSlots"`
	SlotIDs       []string `json:"slotIds"`
}

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

// Handle GET /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	selection, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		// Отсутствие выбора - не ошибка, а пустое состояние
		if errors.Is(err, selectionStore.ErrSelectionNotFound) {
			handlers.RespondJSON(w, http.StatusOK, &SelectionResponse{
				State:   string(domain.SelectionEmpty),
				SlotIDs: []string{},
			})
			return
		}

		h.logger.Error("GET /selection - Failed to load selection: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /selection - Selection retrieved: session=%s, state=%s", sessionID, selection.State())
	handlers.RespondJSON(w, http.StatusOK, &SelectionResponse{
		State:         string(selection.State()),
		SalonID:       selection.SalonID,
		ServiceID:     selection.ServiceID,
		Date:          selection.Date.Format(domain.DateFormat),
		RequiredSlots: selection.RequiredSlots,
		SlotIDs:       selection.SlotIDs,
	})
}
