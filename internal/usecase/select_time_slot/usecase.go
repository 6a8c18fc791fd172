package select_time_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	selectionStore "github.com/salonsphere/booking-service/internal/infra/cache/selection"
	catalogRepo "github.com/salonsphere/booking-service/internal/infra/storage/catalog"
	"github.com/salonsphere/booking-service/pkg/ptr"
)

// UseCase use case выбора временного слота.
// Реализует машину состояний выбора: клик по свободному слоту собирает
// непрерывный блок вперёд от него, повторный клик по выбранному слоту
// снимает весь выбор, смена салона/услуги/даты сбрасывает старый выбор.
type UseCase struct {
	catalogRepo    CatalogRepository
	bookingRepo    BookingRepository
	selectionStore SelectionStore
	policy         Policy
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	selectionStore SelectionStore,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:    catalogRepo,
		bookingRepo:    bookingRepo,
		selectionStore: selectionStore,
		policy:         policy,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case выбора слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectTimeSlot: session=%s, salon=%d, service=%d, slot=%s",
		req.SessionID, req.SalonID, req.ServiceID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectTimeSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон
	salon, err := uc.catalogRepo.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			uc.logger.Warn("SelectTimeSlot: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("SelectTimeSlot: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Получаем услугу (она определяет требуемое число слотов)
	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("SelectTimeSlot: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("SelectTimeSlot: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	requiredSlots := service.RequiredSlots()

	// 5. Валидация даты с учетом политики бронирования
	if err := validateDate(req.Date, now, uc.policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("SelectTimeSlot: date validation failed: %v", err)
		return nil, err
	}

	// 6. В закрытый день выбирать нечего
	if salon.IsClosedOn(req.Date) {
		uc.logger.Warn("SelectTimeSlot: salon id=%d is closed on %s",
			req.SalonID, req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	// 7. Загружаем текущий выбор сессии
	current, err := uc.selectionStore.Get(ctx, req.SessionID)
	if err != nil && !errors.Is(err, selectionStore.ErrSelectionNotFound) {
		uc.logger.Error("SelectTimeSlot: failed to load selection for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load selection: %v", ErrInternal, err)
	}

	// 8. Повторный клик по уже выбранному слоту в том же контексте
	// снимает весь выбор целиком
	if current != nil && current.Matches(req.SalonID, req.ServiceID, req.Date) && current.Contains(req.SlotID) {
		if err := uc.selectionStore.Delete(ctx, req.SessionID); err != nil {
			uc.logger.Error("SelectTimeSlot: failed to clear selection for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to clear selection: %v", ErrInternal, err)
		}

		uc.logger.Info("SelectTimeSlot: session=%s deselected slot=%s", req.SessionID, req.SlotID)
		return emptyResponse(requiredSlots), nil
	}

	// 9. Строим актуальный каталог слотов дня
	slots, err := uc.buildDaySlots(ctx, salon, req.Date, now)
	if err != nil {
		return nil, err
	}

	// 10. Подбираем непрерывный блок вперёд от якорного слота
	slotIDs, err := allocateConsecutiveSlots(slots, req.SlotID, requiredSlots)
	if err != nil {
		// Неудачный выбор сбрасывает и предыдущий выбор сессии:
		// частичных выборов не бывает
		if delErr := uc.selectionStore.Delete(ctx, req.SessionID); delErr != nil {
			uc.logger.Error("SelectTimeSlot: failed to clear selection after allocation failure: %v", delErr)
		}

		uc.logger.Warn("SelectTimeSlot: allocation failed for session=%s, slot=%s: %v",
			req.SessionID, req.SlotID, err)
		return nil, err
	}

	// 11. Сохраняем новый выбор (перезаписывает выбор в другом контексте)
	selection := &domain.Selection{
		SessionID:     req.SessionID,
		SalonID:       req.SalonID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		RequiredSlots: requiredSlots,
		SlotIDs:       slotIDs,
		UpdatedAt:     now,
	}

	if err := uc.selectionStore.Save(ctx, selection); err != nil {
		uc.logger.Error("SelectTimeSlot: failed to save selection for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to save selection: %v", ErrInternal, err)
	}

	uc.logger.Info("SelectTimeSlot: session=%s selected %d slots starting at %s",
		req.SessionID, len(slotIDs), req.SlotID)

	return responseFromSelection(selection), nil
}

// buildDaySlots загружает блокировки и бронирования и строит каталог слотов дня
func (uc *UseCase) buildDaySlots(ctx context.Context, salon *domain.Salon, date, now time.Time) ([]domain.TimeSlot, error) {
	blocks, err := uc.catalogRepo.GetSlotBlocks(ctx, salon.ID, date)
	if err != nil {
		uc.logger.Error("SelectTimeSlot: failed to get slot blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot blocks: %v", ErrInternal, err)
	}

	filter := domain.SalonBookingsFilter{
		SalonID:         salon.ID,
		StartDate:       ptr.Ptr(date),
		EndDate:         ptr.Ptr(date),
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("SelectTimeSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	grid, err := generateTimeGrid(salon.EffectiveOpenTime(), salon.EffectiveCloseTime())
	if err != nil {
		uc.logger.Error("SelectTimeSlot: failed to generate time grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time grid: %v", ErrInternal, err)
	}

	return buildSlotCatalog(
		date,
		grid,
		blocks,
		bookings,
		salon.EffectiveCapacity(),
		now,
		uc.policy.MinBookingNoticeMinutes,
	), nil
}
