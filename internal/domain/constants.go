package domain

import "github.com/salonsphere/booking-service/pkg/types"

// Slot grid defaults
const (
	// SlotStepMinutes is the fixed size of a bookable time slot.
	SlotStepMinutes = 15

	// DefaultSalonCapacity is used when a salon has no explicit capacity set.
	DefaultSalonCapacity = 3

	DefaultOpenTime  = types.TimeString("10:00")
	DefaultCloseTime = types.TimeString("22:00")
)

// Business validation constants
const (
	MinCustomerNameLength       = 2
	MinCustomerPhoneDigits      = 10
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятости слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
