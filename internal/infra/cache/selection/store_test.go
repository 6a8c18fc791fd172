package selection

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, 15*time.Minute), mr
}

func testSelection() *domain.Selection {
	return &domain.Selection{
		SessionID:     "3f3e9f3c-0000-4000-8000-000000000001",
		SalonID:       1,
		ServiceID:     2,
		Date:          time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		RequiredSlots: 3,
		SlotIDs:       []string{"2024-06-10-10:00", "2024-06-10-10:15", "2024-06-10-10:30"},
		UpdatedAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sel := testSelection()
	require.NoError(t, store.Save(ctx, sel))

	got, err := store.Get(ctx, sel.SessionID)
	require.NoError(t, err)

	assert.Equal(t, sel.SessionID, got.SessionID)
	assert.Equal(t, sel.SalonID, got.SalonID)
	assert.Equal(t, sel.ServiceID, got.ServiceID)
	assert.True(t, sel.Date.Equal(got.Date))
	assert.Equal(t, sel.RequiredSlots, got.RequiredSlots)
	assert.Equal(t, sel.SlotIDs, got.SlotIDs)
	assert.Equal(t, domain.SelectionComplete, got.State())
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "unknown-session")
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sel := testSelection()
	require.NoError(t, store.Save(ctx, sel))
	require.NoError(t, store.Delete(ctx, sel.SessionID))

	_, err := store.Get(ctx, sel.SessionID)
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestStore_DeleteMissing(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "unknown-session"))
}

func TestStore_SaveSetsTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sel := testSelection()
	require.NoError(t, store.Save(ctx, sel))

	assert.Equal(t, 15*time.Minute, mr.TTL(keyPrefix+sel.SessionID))
}

func TestStore_ExpiredSelectionIsGone(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sel := testSelection()
	require.NoError(t, store.Save(ctx, sel))

	mr.FastForward(16 * time.Minute)

	_, err := store.Get(ctx, sel.SessionID)
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}
