package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/internal/domain"
	catalogRepo "github.com/salonsphere/booking-service/internal/infra/storage/catalog"
	"github.com/salonsphere/booking-service/pkg/types"
)

type stubCatalogRepo struct {
	salon      *domain.Salon
	salonErr   error
	service    *domain.Service
	serviceErr error
	blocks     []types.TimeString
	blocksErr  error
}

func (s *stubCatalogRepo) GetSalon(_ context.Context, _ int64) (*domain.Salon, error) {
	return s.salon, s.salonErr
}

func (s *stubCatalogRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return s.service, s.serviceErr
}

func (s *stubCatalogRepo) GetSlotBlocks(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return s.blocks, s.blocksErr
}

type stubBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.SalonBookingsFilter
}

func (s *stubBookingRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	return s.bookings, s.err
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

func testService(duration int) *domain.Service {
	return &domain.Service{
		ID:              2,
		SalonID:         1,
		Name:            "Blowout & Style",
		DurationMinutes: duration,
		Price:           65,
	}
}

func newTestUseCase(catalog *stubCatalogRepo, booking *stubBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(catalog, booking, Policy{AdvanceBookingDays: 30, MinBookingNoticeMinutes: 60}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_FullDayGrid(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	catalog := &stubCatalogRepo{salon: testSalon(), service: testService(45)}
	booking := &stubBookingRepo{}
	uc := newTestUseCase(catalog, booking, now)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 2, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.RequiredSlots)
	assert.False(t, resp.Closed)
	assert.False(t, resp.AllFull)
	require.Len(t, resp.Slots, 48)
	assert.Equal(t, "2024-06-10-10:00", resp.Slots[0].ID)

	// Занятость запрашивается только по активным бронированиям на дату
	require.NotNil(t, booking.lastFilter.StartDate)
	require.NotNil(t, booking.lastFilter.EndDate)
	assert.Equal(t, testDate, *booking.lastFilter.StartDate)
	assert.Equal(t, testDate, *booking.lastFilter.EndDate)
	assert.False(t, booking.lastFilter.IncludeInactive)
}

func TestExecute_SalonNotFound(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	catalog := &stubCatalogRepo{salonErr: catalogRepo.ErrSalonNotFound}
	uc := newTestUseCase(catalog, &stubBookingRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 99, ServiceID: 2, Date: testDate})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	catalog := &stubCatalogRepo{salon: testSalon(), serviceErr: catalogRepo.ErrServiceNotFound}
	uc := newTestUseCase(catalog, &stubBookingRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ClosedOnSunday(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	catalog := &stubCatalogRepo{salon: testSalon(), service: testService(45)}
	uc := newTestUseCase(catalog, &stubBookingRepo{}, now)

	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 2, Date: sunday})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DateValidation(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	catalog := &stubCatalogRepo{salon: testSalon(), service: testService(45)}
	uc := newTestUseCase(catalog, &stubBookingRepo{}, now)

	// Дата в прошлом
	past := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 2, Date: past})
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Дальше лимита advanceBookingDays
	tooFar := now.AddDate(0, 0, 31)
	_, err = uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 2, Date: tooFar})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// Ровно на границе лимита - допустимо
	onLimit := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 2, Date: onLimit})
	assert.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubCatalogRepo{}, &stubBookingRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 0, ServiceID: 2, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AllFull(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Салон с одним слотом в сетке и занятым единственным местом
	salon := testSalon()
	salon.Capacity = 1
	salon.OpenTime = "10:00"
	salon.CloseTime = "10:15"

	catalog := &stubCatalogRepo{salon: salon, service: testService(15)}
	booking := &stubBookingRepo{bookings: []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 15, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(catalog, booking, now)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 2, Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.AllFull)
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].CapacityReached)
}
