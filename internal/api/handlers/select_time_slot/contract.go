package select_time_slot

import (
	"context"

	selectTimeSlot "github.com/salonsphere/booking-service/internal/usecase/select_time_slot"
)

type SelectTimeSlotUseCase interface {
	Execute(ctx context.Context, req *selectTimeSlot.Request) (*selectTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
