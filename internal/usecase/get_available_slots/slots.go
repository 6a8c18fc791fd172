package get_available_slots

import (
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	"github.com/salonsphere/booking-service/pkg/types"
)

// generateTimeGrid генерирует все времена слотов дня с фиксированным шагом
// 15 минут от открытия до закрытия салона. Слот, не помещающийся целиком
// до закрытия, не генерируется.
func generateTimeGrid(openTime, closeTime types.TimeString) ([]types.TimeString, error) {
	grid := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		grid = append(grid, current)
		current = slotEnd
	}

	return grid, nil
}

// buildSlotCatalog строит каталог слотов дня с аннотациями занятости
// Чистая функция: одинаковые входы всегда дают одинаковый каталог.
//
// Слот недоступен (IsAvailable=false), если его время заблокировано
// (slot_blocks) или, для сегодняшней даты, начинается раньше чем через
// minNoticeMinutes от текущего времени.
//
// Занятость (CapacityReached) вычисляется независимо от доступности:
// слот может быть доступным и при этом полностью занятым.
func buildSlotCatalog(
	date time.Time,
	grid []types.TimeString,
	blocks []types.TimeString,
	bookings []*domain.Booking,
	capacity int,
	now time.Time,
	minNoticeMinutes int,
) []domain.TimeSlot {
	blocked := make(map[types.TimeString]struct{}, len(blocks))
	for _, b := range blocks {
		blocked[b] = struct{}{}
	}

	// Для сегодняшней даты вычисляем минимально допустимое время начала
	var minAllowed types.TimeString
	var hasMinAllowed bool
	if isSameDay(date, now) {
		currentTime := types.NewTimeString(now)
		t, err := currentTime.AddMinutes(minNoticeMinutes)
		if err == nil {
			minAllowed = t
			hasMinAllowed = true
		} else {
			// Минимальное время вышло за пределы суток - весь день недоступен
			minAllowed = types.TimeString("23:59")
			hasMinAllowed = true
		}
	}

	slots := make([]domain.TimeSlot, len(grid))
	for i, slotTime := range grid {
		_, isBlocked := blocked[slotTime]

		available := !isBlocked
		if available && hasMinAllowed && slotTime.IsBefore(minAllowed) {
			available = false
		}

		bookedCount := countOverlappingBookings(slotTime, domain.SlotStepMinutes, bookings)

		slots[i] = domain.TimeSlot{
			ID:              domain.NewSlotID(date, slotTime),
			Time:            slotTime,
			IsAvailable:     available,
			BookedCount:     bookedCount,
			CapacityReached: bookedCount >= capacity,
		}
	}

	return slots
}

// countOverlappingBookings подсчитывает количество активных бронирований,
// пересекающихся с указанным слотом
// Пересечение есть только если интервалы действительно накладываются:
// если бронирование заканчивается ровно там, где начинается слот (или
// наоборот) - это НЕ пересечение.
func countOverlappingBookings(slotStart types.TimeString, slotDuration int, bookings []*domain.Booking) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		// Если не можем вычислить конец слота, считаем что пересечений нет
		return 0
	}

	count := 0

	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец бронирования, пропускаем
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// allBookedOut проверяет, что ни один слот дня нельзя забронировать
func allBookedOut(slots []domain.TimeSlot) bool {
	for i := range slots {
		if slots[i].IsBookable() {
			return false
		}
	}
	return true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
