package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonsphere/booking-service/pkg/types"
)

func TestSalon_EffectiveCapacity(t *testing.T) {
	assert.Equal(t, 5, (&Salon{Capacity: 5}).EffectiveCapacity())
	assert.Equal(t, DefaultSalonCapacity, (&Salon{}).EffectiveCapacity())
	assert.Equal(t, DefaultSalonCapacity, (&Salon{Capacity: -1}).EffectiveCapacity())
}

func TestSalon_EffectiveHours(t *testing.T) {
	salon := &Salon{OpenTime: types.TimeString("09:00"), CloseTime: types.TimeString("18:00")}
	assert.Equal(t, types.TimeString("09:00"), salon.EffectiveOpenTime())
	assert.Equal(t, types.TimeString("18:00"), salon.EffectiveCloseTime())

	empty := &Salon{}
	assert.Equal(t, DefaultOpenTime, empty.EffectiveOpenTime())
	assert.Equal(t, DefaultCloseTime, empty.EffectiveCloseTime())
}

func TestSalon_IsClosedOn(t *testing.T) {
	salon := &Salon{}

	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, salon.IsClosedOn(sunday))
	assert.False(t, salon.IsClosedOn(monday))
	assert.False(t, salon.IsClosedOn(saturday))
}
