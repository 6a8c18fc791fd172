package get_available_slots

import (
	"context"
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	"github.com/salonsphere/booking-service/pkg/types"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetSalon(ctx context.Context, id int64) (*domain.Salon, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
	// GetSlotBlocks возвращает времена заблокированных слотов на дату
	GetSlotBlocks(ctx context.Context, salonID int64, date time.Time) ([]types.TimeString, error)
}

// BookingRepository интерфейс репозитория бронирований (ledger занятости)
type BookingRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
