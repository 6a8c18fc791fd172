package get_salon_services

import (
	"context"

	"github.com/salonsphere/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListSalonServices(ctx context.Context, salonID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
