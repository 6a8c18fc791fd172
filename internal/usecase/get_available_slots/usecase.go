package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonsphere/booking-service/internal/domain"
	catalogRepo "github.com/salonsphere/booking-service/internal/infra/storage/catalog"
	"github.com/salonsphere/booking-service/pkg/ptr"
)

// UseCase use case для получения каталога слотов дня
// Объединяет генерацию сетки слотов и резолвер занятости.
type UseCase struct {
	catalogRepo  CatalogRepository
	bookingRepo  BookingRepository
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		bookingRepo:  bookingRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%d, service=%d, date=%s",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон
	salon, err := uc.catalogRepo.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Получаем услугу (она же определяет требуемое число слотов)
	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Валидация даты с учетом политики бронирования
	if err := validateDate(req.Date, now, uc.policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Если салон закрыт в эту дату - слотов нет
	if salon.IsClosedOn(req.Date) {
		uc.logger.Info("GetAvailableSlots: salon id=%d is closed on %s",
			req.SalonID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:          req.Date,
			SalonID:       req.SalonID,
			ServiceID:     req.ServiceID,
			RequiredSlots: service.RequiredSlots(),
			Closed:        true,
			Slots:         []domain.TimeSlot{},
		}, nil
	}

	// 7. Получаем заблокированные слоты на дату
	blocks, err := uc.catalogRepo.GetSlotBlocks(ctx, req.SalonID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slot blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot blocks: %v", ErrInternal, err)
	}

	// 8. Получаем все активные бронирования на эту дату
	filter := domain.SalonBookingsFilter{
		SalonID:         req.SalonID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 9. Генерируем сетку слотов
	grid, err := generateTimeGrid(salon.EffectiveOpenTime(), salon.EffectiveCloseTime())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time grid: %v", ErrInternal, err)
	}

	// 10. Аннотируем слоты доступностью и занятостью
	slots := buildSlotCatalog(
		req.Date,
		grid,
		blocks,
		bookings,
		salon.EffectiveCapacity(),
		now,
		uc.policy.MinBookingNoticeMinutes,
	)

	uc.logger.Info("GetAvailableSlots: generated %d slots for salon=%d, service=%d, date=%s",
		len(slots), req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		SalonID:       req.SalonID,
		ServiceID:     req.ServiceID,
		RequiredSlots: service.RequiredSlots(),
		AllFull:       allBookedOut(slots),
		Slots:         slots,
	}, nil
}
