package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/pkg/types"
)

func TestNewSlotID(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	// Ведущий ноль часа отбрасывается
	assert.Equal(t, "2024-06-10-9:00", NewSlotID(date, types.TimeString("09:00")))
	assert.Equal(t, "2024-06-10-10:15", NewSlotID(date, types.TimeString("10:15")))
	assert.Equal(t, "2024-06-10-21:45", NewSlotID(date, types.TimeString("21:45")))
}

func TestNewSlotID_Deterministic(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	first := NewSlotID(date, types.TimeString("10:00"))
	second := NewSlotID(date, types.TimeString("10:00"))
	assert.Equal(t, first, second)
}

func TestParseSlotID(t *testing.T) {
	date, slotTime, err := ParseSlotID("2024-06-10-10:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, types.TimeString("10:15"), slotTime)

	// Час без ведущего нуля нормализуется
	_, slotTime, err = ParseSlotID("2024-06-10-9:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), slotTime)

	for _, bad := range []string{"", "2024-06-10", "10:00", "2024-06-10_10:00", "not-a-date-10:00"} {
		_, _, err := ParseSlotID(bad)
		assert.Error(t, err, "id %q", bad)
	}
}

func TestTimeSlot_IsBookable(t *testing.T) {
	tests := []struct {
		name string
		slot TimeSlot
		want bool
	}{
		{"available with room", TimeSlot{IsAvailable: true, CapacityReached: false}, true},
		{"available but full", TimeSlot{IsAvailable: true, CapacityReached: true}, false},
		{"blocked", TimeSlot{IsAvailable: false, CapacityReached: false}, false},
		{"blocked and full", TimeSlot{IsAvailable: false, CapacityReached: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.IsBookable())
		})
	}
}
