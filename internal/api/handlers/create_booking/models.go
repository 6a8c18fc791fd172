package create_booking

import (
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	createBooking "github.com/salonsphere/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SalonID       int64   `json:"salonId"`
	ServiceID     int64   `json:"serviceId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64    `json:"id"`
	ConfirmationCode string   `json:"confirmationCode"`
	SalonID          int64    `json:"salonId"`
	ServiceID        int64    `json:"serviceId"`
	BookingDate      string   `json:"bookingDate"`
	StartTime        string   `json:"startTime"`
	DurationMinutes  int      `json:"durationMinutes"`
	TimeSlots        []string `json:"timeSlots"`
	Status           string   `json:"status"`
	CustomerName     string   `json:"customerName"`
	CustomerEmail    string   `json:"customerEmail"`
	CustomerPhone    string   `json:"customerPhone"`
	Notes            *string  `json:"notes,omitempty"`
	ServiceName      string   `json:"serviceName"`
	ServicePrice     float64  `json:"servicePrice"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(sessionID string) *createBooking.Request {
	return &createBooking.Request{
		SessionID:     sessionID,
		SalonID:       r.SalonID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	return &BookingResponse{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		SalonID:          b.SalonID,
		ServiceID:        b.ServiceID,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		DurationMinutes:  b.DurationMinutes,
		TimeSlots:        b.TimeSlots,
		Status:           string(b.Status),
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		Notes:            b.Notes,
		ServiceName:      b.ServiceName,
		ServicePrice:     b.ServicePrice,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}
