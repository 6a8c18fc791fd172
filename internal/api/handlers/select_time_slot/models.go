package select_time_slot

import (
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	selectTimeSlot "github.com/salonsphere/booking-service/internal/usecase/select_time_slot"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	SalonID   int64  `json:"salonId"`
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"` // "2024-06-10"
	SlotID    string `json:"slotId"`
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	State         string   `json:"state"`
	RequiredSlots int      `json:"requiredSlots"`
	SlotIDs       []string `json:"slotIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectSlotRequest) ToUseCaseRequest(sessionID string) (*selectTimeSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &selectTimeSlot.Request{
		SessionID: sessionID,
		SalonID:   r.SalonID,
		ServiceID: r.ServiceID,
		Date:      date,
		SlotID:    r.SlotID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectTimeSlot.Response) *SelectionResponse {
	return &SelectionResponse{
		State:         string(resp.State),
		RequiredSlots: resp.RequiredSlots,
		SlotIDs:       resp.SlotIDs,
	}
}
