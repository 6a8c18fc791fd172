package domain

import "time"

// SelectionState represents the wizard selection state machine
type SelectionState string

const (
	SelectionEmpty    SelectionState = "empty"
	SelectionPartial  SelectionState = "partial"
	SelectionComplete SelectionState = "complete"
)

// Selection is the in-progress set of slot IDs a visitor has picked for a
// booking. A non-empty selection is always a contiguous run of slots in the
// day's slot sequence, produced by the forward-scan allocator; it is never
// longer than RequiredSlots.
type Selection struct {
	SessionID     string    `json:"sessionId"`
	SalonID       int64     `json:"salonId"`
	ServiceID     int64     `json:"serviceId"`
	Date          time.Time `json:"date"`
	RequiredSlots int       `json:"requiredSlots"`
	SlotIDs       []string  `json:"slotIds"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// State derives the selection state from the number of picked slots
func (s *Selection) State() SelectionState {
	switch {
	case s == nil || len(s.SlotIDs) == 0:
		return SelectionEmpty
	case len(s.SlotIDs) >= s.RequiredSlots:
		return SelectionComplete
	default:
		return SelectionPartial
	}
}

// IsComplete reports whether the selection covers all required slots
func (s *Selection) IsComplete() bool {
	return s.State() == SelectionComplete
}

// Contains reports whether the slot is part of the current selection
func (s *Selection) Contains(slotID string) bool {
	if s == nil {
		return false
	}
	for _, id := range s.SlotIDs {
		if id == slotID {
			return true
		}
	}
	return false
}

// Matches reports whether the selection belongs to the given wizard context.
// A pick for a different salon, service or date discards the old selection.
func (s *Selection) Matches(salonID, serviceID int64, date time.Time) bool {
	if s == nil {
		return false
	}
	return s.SalonID == salonID &&
		s.ServiceID == serviceID &&
		sameDay(s.Date, date)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
