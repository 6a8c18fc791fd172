package get_service_reviews

import (
	"context"

	"github.com/salonsphere/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListServiceReviews(ctx context.Context, salonID, serviceID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
