package get_available_slots

import (
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	getAvailableSlots "github.com/salonsphere/booking-service/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date          string `json:"date"`
	SalonID       int64  `json:"salonId"`
	ServiceID     int64  `json:"serviceId"`
	RequiredSlots int    `json:"requiredSlots"`
	Closed        bool   `json:"closed"`
	AllFull       bool   `json:"allFull"`
	Slots         []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	ID              string `json:"id"`
	Time            string `json:"time"`
	IsAvailable     bool   `json:"isAvailable"`
	BookedCount     int    `json:"bookedCount"`
	CapacityReached bool   `json:"capacityReached"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			ID:              slot.ID,
			Time:            slot.Time.String(),
			IsAvailable:     slot.IsAvailable,
			BookedCount:     slot.BookedCount,
			CapacityReached: slot.CapacityReached,
		}
	}

	return &SlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		SalonID:       resp.SalonID,
		ServiceID:     resp.ServiceID,
		RequiredSlots: resp.RequiredSlots,
		Closed:        resp.Closed,
		AllFull:       resp.AllFull,
		Slots:         slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(salonID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SalonID:   salonID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
