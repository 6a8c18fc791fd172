package get_session_bookings

import (
	"context"

	"github.com/salonsphere/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetSessionBookings(ctx context.Context, req *models.GetSessionBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
