package select_time_slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/internal/domain"
)

func daySlots(t *testing.T, date time.Time, unavailable ...string) []domain.TimeSlot {
	t.Helper()

	grid, err := generateTimeGrid("10:00", "22:00")
	require.NoError(t, err)

	blocked := make(map[string]struct{}, len(unavailable))
	for _, id := range unavailable {
		blocked[id] = struct{}{}
	}

	slots := make([]domain.TimeSlot, len(grid))
	for i, slotTime := range grid {
		id := domain.NewSlotID(date, slotTime)
		_, isBlocked := blocked[id]
		slots[i] = domain.TimeSlot{
			ID:          id,
			Time:        slotTime,
			IsAvailable: !isBlocked,
		}
	}
	return slots
}

func TestAllocateConsecutiveSlots(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slots := daySlots(t, date)

	got, err := allocateConsecutiveSlots(slots, "2024-06-10-10:00", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10-10:00", "2024-06-10-10:15", "2024-06-10-10:30"}, got)
}

func TestAllocateConsecutiveSlots_SingleSlot(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slots := daySlots(t, date)

	got, err := allocateConsecutiveSlots(slots, "2024-06-10-15:30", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10-15:30"}, got)
}

func TestAllocateConsecutiveSlots_AnchorNotFound(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slots := daySlots(t, date)

	_, err := allocateConsecutiveSlots(slots, "2024-06-10-9:00", 1)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestAllocateConsecutiveSlots_BlockInterrupted(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slots := daySlots(t, date, "2024-06-10-10:15")

	// Недоступный слот внутри блока отменяет весь выбор
	_, err := allocateConsecutiveSlots(slots, "2024-06-10-10:00", 3)
	assert.ErrorIs(t, err, ErrInsufficientConsecutiveSlots)

	// Сам якорь недоступен
	_, err = allocateConsecutiveSlots(slots, "2024-06-10-10:15", 1)
	assert.ErrorIs(t, err, ErrInsufficientConsecutiveSlots)
}

func TestAllocateConsecutiveSlots_RunsOffEndOfDay(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slots := daySlots(t, date)

	// Последний слот дня, а нужно три подряд
	_, err := allocateConsecutiveSlots(slots, "2024-06-10-21:45", 3)
	assert.ErrorIs(t, err, ErrInsufficientConsecutiveSlots)

	// Три последних слота дня - помещается
	got, err := allocateConsecutiveSlots(slots, "2024-06-10-21:15", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10-21:15", "2024-06-10-21:30", "2024-06-10-21:45"}, got)
}

func TestAllocateConsecutiveSlots_ForwardOnly(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	// Слот после якоря занят, хотя слева места свободны
	slots := daySlots(t, date, "2024-06-10-10:30")

	// Блок не сдвигается влево от якоря
	_, err := allocateConsecutiveSlots(slots, "2024-06-10-10:15", 3)
	assert.ErrorIs(t, err, ErrInsufficientConsecutiveSlots)
}
