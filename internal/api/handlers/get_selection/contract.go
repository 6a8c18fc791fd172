package get_selection

import (
	"context"

	"github.com/salonsphere/booking-service/internal/domain"
)

type SelectionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Selection, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
