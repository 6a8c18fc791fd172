package create_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSelectionNotFound возвращается, когда у сессии нет сохраненного выбора слотов
	ErrSelectionNotFound = errors.New("create_booking: no slot selection for session")

	// ErrSelectionIncomplete возвращается, когда выбор сессии не покрывает
	// требуемое число слотов или относится к другому салону/услуге
	ErrSelectionIncomplete = errors.New("create_booking: slot selection is incomplete")

	// ErrSlotNotAvailable возвращается, когда один из выбранных слотов
	// стал недоступен к моменту подтверждения
	ErrSlotNotAvailable = errors.New("create_booking: time slot is no longer available")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
