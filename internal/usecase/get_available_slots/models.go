package get_available_slots

import (
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
)

// Policy бизнес-ограничения бронирования (из конфигурации сервиса)
type Policy struct {
	AdvanceBookingDays      int // 0 = без ограничения
	MinBookingNoticeMinutes int
}

// Request модель запроса на получение слотов дня
type Request struct {
	SalonID   int64     // ID салона
	ServiceID int64     // ID услуги (определяет требуемое число слотов)
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с каталогом слотов дня
type Response struct {
	Date          time.Time         // Дата, на которую запрашивались слоты
	SalonID       int64             // ID салона
	ServiceID     int64             // ID услуги
	RequiredSlots int               // Сколько последовательных слотов нужно услуге
	Closed        bool              // Салон закрыт в эту дату
	AllFull       bool              // Ни один слот дня нельзя забронировать
	Slots         []domain.TimeSlot // Упорядоченный каталог слотов с аннотациями
}
