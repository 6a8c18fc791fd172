package domain

import (
	"fmt"
	"time"

	"github.com/salonsphere/booking-service/pkg/types"
)

// TimeSlot represents one 15-minute scheduling unit within business hours.
// Regenerated (never persisted) whenever date or salon changes.
type TimeSlot struct {
	ID              string
	Time            types.TimeString
	IsAvailable     bool // false when the slot is pre-blocked or outside notice
	BookedCount     int  // current active reservations overlapping the slot
	CapacityReached bool // derived: BookedCount >= salon capacity
}

// IsBookable reports whether the slot can take one more reservation.
// Availability and capacity are independent flags: a slot can be available
// and full at the same time.
func (s *TimeSlot) IsBookable() bool {
	return s.IsAvailable && !s.CapacityReached
}

// NewSlotID derives the deterministic slot identity from date and time,
// e.g. "2024-06-10-10:00". The same date and time always yield the same ID,
// which keeps regeneration idempotent.
func NewSlotID(date time.Time, t types.TimeString) string {
	return fmt.Sprintf("%s-%s", date.Format(DateFormat), t.Compact())
}

// ParseSlotID splits a slot ID back into its date and time parts
func ParseSlotID(id string) (time.Time, types.TimeString, error) {
	if len(id) < len(DateFormat)+2 || id[len(DateFormat)] != '-' {
		return time.Time{}, "", fmt.Errorf("invalid slot id %q", id)
	}

	date, err := time.Parse(DateFormat, id[:len(DateFormat)])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid slot id %q: %v", id, err)
	}

	slotTime, err := types.NewTimeStringFromString(id[len(DateFormat)+1:])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid slot id %q: %v", id, err)
	}

	return date, slotTime, nil
}
