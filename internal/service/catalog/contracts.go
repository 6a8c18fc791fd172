package catalog

import (
	"context"

	"github.com/salonsphere/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListSalons(ctx context.Context) ([]*domain.Salon, error)
	GetSalon(ctx context.Context, id int64) (*domain.Salon, error)
	ListServicesBySalon(ctx context.Context, salonID int64) ([]*domain.Service, error)
	GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error)
	ListReviewsByService(ctx context.Context, serviceID int64) ([]*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
