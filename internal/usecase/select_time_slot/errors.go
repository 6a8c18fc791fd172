package select_time_slot

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("select_time_slot: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("select_time_slot: service not found")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("select_time_slot: salon is closed on this date")

	// ErrSlotNotFound возвращается, когда якорный слот отсутствует в сетке дня
	ErrSlotNotFound = errors.New("select_time_slot: slot not found in day grid")

	// ErrInsufficientConsecutiveSlots возвращается, когда от якорного слота
	// вперёд не набирается требуемое число подряд идущих свободных слотов
	ErrInsufficientConsecutiveSlots = errors.New("select_time_slot: not enough consecutive available slots")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("select_time_slot: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("select_time_slot: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_time_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_time_slot: internal error")
)
