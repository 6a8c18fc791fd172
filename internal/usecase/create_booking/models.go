package create_booking

import "github.com/salonsphere/booking-service/internal/domain"

// Policy - параметры политики бронирования
type Policy struct {
	AdvanceBookingDays      int
	MinBookingNoticeMinutes int
}

// Request - запрос на создание бронирования
type Request struct {
	SessionID     string
	SalonID       int64
	ServiceID     int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         *string
}

// Response - результат создания бронирования
type Response struct {
	Booking *domain.Booking
}
