package select_time_slot

import (
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
)

// Policy - параметры политики бронирования
type Policy struct {
	AdvanceBookingDays      int
	MinBookingNoticeMinutes int
}

// Request - запрос на выбор временного слота
type Request struct {
	SessionID string
	SalonID   int64
	ServiceID int64
	Date      time.Time
	SlotID    string
}

// Response - результат выбора: текущее состояние выбора сессии
type Response struct {
	State         domain.SelectionState
	RequiredSlots int
	SlotIDs       []string
}

func responseFromSelection(sel *domain.Selection) *Response {
	return &Response{
		State:         sel.State(),
		RequiredSlots: sel.RequiredSlots,
		SlotIDs:       sel.SlotIDs,
	}
}

func emptyResponse(requiredSlots int) *Response {
	return &Response{
		State:         domain.SelectionEmpty,
		RequiredSlots: requiredSlots,
		SlotIDs:       []string{},
	}
}
