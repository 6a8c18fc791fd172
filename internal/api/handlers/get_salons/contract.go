package get_salons

import (
	"context"

	"github.com/salonsphere/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListSalons(ctx context.Context) (*models.SalonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
