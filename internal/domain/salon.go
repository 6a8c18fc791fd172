package domain

import (
	"time"

	"github.com/salonsphere/booking-service/pkg/types"
)

// SalonType describes which clientele a salon serves
type SalonType string

const (
	SalonTypeMen    SalonType = "men"
	SalonTypeWomen  SalonType = "women"
	SalonTypeUnisex SalonType = "unisex"
)

// Salon represents a salon in the catalog. Immutable reference data.
type Salon struct {
	ID          int64
	Name        string
	Description string
	Address     string
	Phone       string
	Type        SalonType
	Capacity    int // max simultaneous bookings per slot, 0 = unset
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	ImageURL    *string
}

// EffectiveCapacity returns the salon capacity, falling back to the default
// when the capacity is unset or non-positive.
func (s *Salon) EffectiveCapacity() int {
	if s == nil || s.Capacity <= 0 {
		return DefaultSalonCapacity
	}
	return s.Capacity
}

// EffectiveOpenTime returns the opening time, defaulting when unset
func (s *Salon) EffectiveOpenTime() types.TimeString {
	if s == nil || s.OpenTime.IsZero() {
		return DefaultOpenTime
	}
	return s.OpenTime
}

// EffectiveCloseTime returns the closing time, defaulting when unset
func (s *Salon) EffectiveCloseTime() types.TimeString {
	if s == nil || s.CloseTime.IsZero() {
		return DefaultCloseTime
	}
	return s.CloseTime
}

// IsClosedOn reports whether the salon is closed on the given date.
// Salons are closed on Sundays.
func (s *Salon) IsClosedOn(date time.Time) bool {
	return date.Weekday() == time.Sunday
}
