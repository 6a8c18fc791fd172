package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/internal/domain"
	"github.com/salonsphere/booking-service/pkg/types"
)

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestGenerateTimeGrid(t *testing.T) {
	grid, err := generateTimeGrid("10:00", "22:00")
	require.NoError(t, err)

	// 12 часов по 4 слота в час
	require.Len(t, grid, 48)
	assert.Equal(t, types.TimeString("10:00"), grid[0])
	assert.Equal(t, types.TimeString("10:15"), grid[1])
	assert.Equal(t, types.TimeString("21:45"), grid[len(grid)-1])

	// Слоты строго возрастают с шагом 15 минут
	for i := 1; i < len(grid); i++ {
		assert.Equal(t, grid[i-1].Minutes()+domain.SlotStepMinutes, grid[i].Minutes())
	}
}

func TestGenerateTimeGrid_PartialSlotDropped(t *testing.T) {
	// Последний слот должен целиком помещаться до закрытия
	grid, err := generateTimeGrid("10:00", "10:20")
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, types.TimeString("10:00"), grid[0])
}

func TestGenerateTimeGrid_Empty(t *testing.T) {
	grid, err := generateTimeGrid("10:00", "10:00")
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestBuildSlotCatalog_IDsAndOrder(t *testing.T) {
	grid, err := generateTimeGrid("10:00", "22:00")
	require.NoError(t, err)

	now := testDate.AddDate(0, 0, -1)
	slots := buildSlotCatalog(testDate, grid, nil, nil, 3, now, 60)

	require.Len(t, slots, 48)
	assert.Equal(t, "2024-06-10-10:00", slots[0].ID)
	assert.Equal(t, "2024-06-10-21:45", slots[47].ID)

	// Все идентификаторы уникальны
	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		_, dup := seen[slot.ID]
		assert.False(t, dup, "duplicate slot id %s", slot.ID)
		seen[slot.ID] = struct{}{}

		assert.True(t, slot.IsAvailable)
		assert.Zero(t, slot.BookedCount)
		assert.False(t, slot.CapacityReached)
	}
}

func TestBuildSlotCatalog_BlockedSlots(t *testing.T) {
	grid := []types.TimeString{"10:00", "10:15", "10:30"}
	blocks := []types.TimeString{"10:15"}

	now := testDate.AddDate(0, 0, -1)
	slots := buildSlotCatalog(testDate, grid, blocks, nil, 3, now, 60)

	assert.True(t, slots[0].IsAvailable)
	assert.False(t, slots[1].IsAvailable)
	assert.True(t, slots[2].IsAvailable)
}

func TestBuildSlotCatalog_CapacityReached(t *testing.T) {
	grid := []types.TimeString{"10:00", "10:15"}

	bookings := []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 15, Status: domain.StatusConfirmed},
		{StartTime: "10:00", DurationMinutes: 15, Status: domain.StatusConfirmed},
		{StartTime: "10:00", DurationMinutes: 15, Status: domain.StatusConfirmed},
	}

	now := testDate.AddDate(0, 0, -1)
	slots := buildSlotCatalog(testDate, grid, nil, bookings, 3, now, 60)

	// Слот остается доступным, но занят полностью
	assert.True(t, slots[0].IsAvailable)
	assert.Equal(t, 3, slots[0].BookedCount)
	assert.True(t, slots[0].CapacityReached)
	assert.False(t, slots[0].IsBookable())

	assert.Equal(t, 0, slots[1].BookedCount)
	assert.False(t, slots[1].CapacityReached)
	assert.True(t, slots[1].IsBookable())
}

func TestBuildSlotCatalog_MinNoticeToday(t *testing.T) {
	grid := []types.TimeString{"10:00", "10:15", "11:00", "11:15"}

	// Сейчас 10:00 того же дня, уведомление за 60 минут
	now := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	slots := buildSlotCatalog(testDate, grid, nil, nil, 3, now, 60)

	// Сетка сохраняется целиком, ранние слоты помечаются недоступными
	require.Len(t, slots, 4)
	assert.False(t, slots[0].IsAvailable)
	assert.False(t, slots[1].IsAvailable)
	assert.True(t, slots[2].IsAvailable)
	assert.True(t, slots[3].IsAvailable)
}

func TestCountOverlappingBookings(t *testing.T) {
	bookings := []*domain.Booking{
		// 10:00 - 11:00
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		// 10:30 - 10:45
		{StartTime: "10:30", DurationMinutes: 15, Status: domain.StatusPending},
		// Отмененное не считается
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelledByUser},
	}

	tests := []struct {
		slot types.TimeString
		want int
	}{
		{"10:00", 1},
		{"10:30", 2},
		{"10:45", 1},
		// Бронирование заканчивается ровно в 11:00 - это не пересечение
		{"11:00", 0},
		// Слот заканчивается ровно в 10:00 - это не пересечение
		{"09:45", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			assert.Equal(t, tt.want, countOverlappingBookings(tt.slot, domain.SlotStepMinutes, bookings))
		})
	}
}

func TestAllBookedOut(t *testing.T) {
	assert.True(t, allBookedOut(nil))
	assert.True(t, allBookedOut([]domain.TimeSlot{
		{IsAvailable: false},
		{IsAvailable: true, CapacityReached: true},
	}))
	assert.False(t, allBookedOut([]domain.TimeSlot{
		{IsAvailable: false},
		{IsAvailable: true, CapacityReached: false},
	}))
}
