package domain

import (
	"time"

	"github.com/salonsphere/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusInProgress       BookingStatus = "in_progress"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledBySalon BookingStatus = "cancelled_by_salon"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking represents a confirmed salon appointment. Created only on
// submission; never mutated afterwards except for status transitions.
type Booking struct {
	ID               int64
	ConfirmationCode string // uuid, user-facing identity
	SessionID        string
	SalonID          int64
	ServiceID        int64
	BookingDate      time.Time
	StartTime        types.TimeString
	DurationMinutes  int
	TimeSlots        []string // ordered slot IDs covered by the appointment
	Status           BookingStatus

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledBySalon &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledBySalon
}

// IsCompleted returns true if the booking is completed or was a no-show
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// SalonBookingsFilter фильтр для получения бронирований салона
type SalonBookingsFilter struct {
	SalonID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
