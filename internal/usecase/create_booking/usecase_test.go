package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/internal/domain"
	selectionStore "github.com/salonsphere/booking-service/internal/infra/cache/selection"
	"github.com/salonsphere/booking-service/pkg/types"
)

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

const testSessionID = "3f3e9f3c-0000-4000-8000-000000000001"

type stubCatalogRepo struct {
	salon      *domain.Salon
	salonErr   error
	service    *domain.Service
	serviceErr error
	blocks     []types.TimeString
}

func (s *stubCatalogRepo) GetSalon(_ context.Context, _ int64) (*domain.Salon, error) {
	return s.salon, s.salonErr
}

func (s *stubCatalogRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return s.service, s.serviceErr
}

func (s *stubCatalogRepo) GetSlotBlocks(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return s.blocks, nil
}

type stubBookingRepo struct {
	bookings    []*domain.Booking
	created     *domain.Booking
	createCalls int
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.createCalls++
	created := *booking
	created.ID = 42
	s.created = &created
	return &created, nil
}

func (s *stubBookingRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type memSelectionStore struct {
	selections map[string]*domain.Selection
}

func newMemSelectionStore() *memSelectionStore {
	return &memSelectionStore{selections: make(map[string]*domain.Selection)}
}

func (s *memSelectionStore) Get(_ context.Context, sessionID string) (*domain.Selection, error) {
	sel, ok := s.selections[sessionID]
	if !ok {
		return nil, selectionStore.ErrSelectionNotFound
	}
	return sel, nil
}

func (s *memSelectionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.selections, sessionID)
	return nil
}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSalon() *domain.Salon {
	return &domain.Salon{
		ID:        1,
		Name:      "Serenity Salon & Spa",
		Type:      domain.SalonTypeUnisex,
		Capacity:  3,
		OpenTime:  "10:00",
		CloseTime: "22:00",
	}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              2,
		SalonID:         1,
		Name:            "Blowout & Style",
		DurationMinutes: 45,
		Price:           65,
	}
}

func completeSelection() *domain.Selection {
	return &domain.Selection{
		SessionID:     testSessionID,
		SalonID:       1,
		ServiceID:     2,
		Date:          testDate,
		RequiredSlots: 3,
		SlotIDs:       []string{"2024-06-10-10:00", "2024-06-10-10:15", "2024-06-10-10:30"},
	}
}

func newTestUseCase(catalog *stubCatalogRepo, booking *stubBookingRepo, store *memSelectionStore) *UseCase {
	uc := NewUseCase(catalog, booking, store, passthroughTxManager{},
		Policy{AdvanceBookingDays: 30, MinBookingNoticeMinutes: 60}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func createRequest() *Request {
	return &Request{
		SessionID:     testSessionID,
		SalonID:       1,
		ServiceID:     2,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+1 (555) 123-4567",
	}
}

func TestExecute_CreatesBookingFromSelection(t *testing.T) {
	store := newMemSelectionStore()
	store.selections[testSessionID] = completeSelection()

	bookingRepo := &stubBookingRepo{}
	uc := newTestUseCase(&stubCatalogRepo{salon: testSalon(), service: testService()}, bookingRepo, store)

	resp, err := uc.Execute(context.Background(), createRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	booking := resp.Booking
	assert.Equal(t, int64(42), booking.ID)
	assert.NotEmpty(t, booking.ConfirmationCode)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, testSessionID, booking.SessionID)
	assert.Equal(t, []string{"2024-06-10-10:00", "2024-06-10-10:15", "2024-06-10-10:30"}, booking.TimeSlots)
	assert.Equal(t, types.TimeString("10:00"), booking.StartTime)
	assert.Equal(t, 45, booking.DurationMinutes)
	assert.Equal(t, "Blowout & Style", booking.ServiceName)
	assert.Equal(t, float64(65), booking.ServicePrice)

	// Выбор сессии должен очищаться после успешного бронирования
	assert.NotContains(t, store.selections, testSessionID)
}

func TestExecute_TrimsCustomerFields(t *testing.T) {
	store := newMemSelectionStore()
	store.selections[testSessionID] = completeSelection()

	bookingRepo := &stubBookingRepo{}
	uc := newTestUseCase(&stubCatalogRepo{salon: testSalon(), service: testService()}, bookingRepo, store)

	req := createRequest()
	req.CustomerName = "  Jane Doe  "
	req.CustomerEmail = " jane@example.com "

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resp.Booking.CustomerName)
	assert.Equal(t, "jane@example.com", resp.Booking.CustomerEmail)
}

func TestExecute_NoSelection(t *testing.T) {
	uc := newTestUseCase(&stubCatalogRepo{salon: testSalon(), service: testService()}, &stubBookingRepo{}, newMemSelectionStore())

	_, err := uc.Execute(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestExecute_SelectionContextMismatch(t *testing.T) {
	store := newMemSelectionStore()
	selection := completeSelection()
	selection.ServiceID = 99
	store.selections[testSessionID] = selection

	uc := newTestUseCase(&stubCatalogRepo{salon: testSalon(), service: testService()}, &stubBookingRepo{}, store)

	_, err := uc.Execute(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestExecute_SelectionIncomplete(t *testing.T) {
	store := newMemSelectionStore()
	selection := completeSelection()
	selection.SlotIDs = selection.SlotIDs[:1]
	store.selections[testSessionID] = selection

	uc := newTestUseCase(&stubCatalogRepo{salon: testSalon(), service: testService()}, &stubBookingRepo{}, store)

	_, err := uc.Execute(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestExecute_SlotTakenBeforeConfirmation(t *testing.T) {
	store := newMemSelectionStore()
	store.selections[testSessionID] = completeSelection()

	// Конкурирующие бронирования выбирают вместимость слота 10:15
	bookingRepo := &stubBookingRepo{
		bookings: []*domain.Booking{
			{StartTime: "10:15", DurationMinutes: 15, Status: domain.StatusConfirmed},
			{StartTime: "10:15", DurationMinutes: 15, Status: domain.StatusConfirmed},
			{StartTime: "10:15", DurationMinutes: 15, Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(&stubCatalogRepo{salon: testSalon(), service: testService()}, bookingRepo, store)

	_, err := uc.Execute(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, bookingRepo.createCalls)
}

func TestExecute_SlotBlockedBeforeConfirmation(t *testing.T) {
	store := newMemSelectionStore()
	store.selections[testSessionID] = completeSelection()

	catalog := &stubCatalogRepo{
		salon:   testSalon(),
		service: testService(),
		blocks:  []types.TimeString{"10:30"},
	}
	bookingRepo := &stubBookingRepo{}
	uc := newTestUseCase(catalog, bookingRepo, store)

	_, err := uc.Execute(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, bookingRepo.createCalls)
}

func TestExecute_CustomerValidation(t *testing.T) {
	longNotes := strings.Repeat("x", domain.MaxNotesLength+1)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{
			name:   "short name",
			mutate: func(req *Request) { req.CustomerName = "J" },
		},
		{
			name:   "blank name",
			mutate: func(req *Request) { req.CustomerName = "   " },
		},
		{
			name:   "invalid email",
			mutate: func(req *Request) { req.CustomerEmail = "not-an-email" },
		},
		{
			name:   "short phone",
			mutate: func(req *Request) { req.CustomerPhone = "12345" },
		},
		{
			name:   "notes too long",
			mutate: func(req *Request) { req.Notes = &longNotes },
		},
		{
			name:   "empty session",
			mutate: func(req *Request) { req.SessionID = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemSelectionStore()
			store.selections[testSessionID] = completeSelection()

			bookingRepo := &stubBookingRepo{}
			uc := newTestUseCase(&stubCatalogRepo{salon: testSalon(), service: testService()}, bookingRepo, store)

			req := createRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, bookingRepo.createCalls)
		})
	}
}
