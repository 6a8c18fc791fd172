package create_booking

import (
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	"github.com/salonsphere/booking-service/pkg/types"
)

// generateTimeGrid генерирует все времена слотов дня с фиксированным шагом
// 15 минут от открытия до закрытия салона
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

	var minAllowed types.TimeString
	var hasMinAllowed bool
	if isSameDay(date, now) {
		currentTime := types.NewTimeString(now)
		t, err := currentTime.AddMinutes(minNoticeMinutes)
		if err == nil {
			minAllowed = t
			hasMinAllowed = true
		} else {
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
func countOverlappingBookings(slotStart types.TimeString, slotDuration int, bookings []*domain.Booking) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return 0
	}

	count := 0

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
