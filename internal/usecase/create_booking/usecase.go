package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salonsphere/booking-service/internal/domain"
	selectionStore "github.com/salonsphere/booking-service/internal/infra/cache/selection"
	catalogRepo "github.com/salonsphere/booking-service/internal/infra/storage/catalog"
	"github.com/salonsphere/booking-service/pkg/ptr"
)

// UseCase use case создания бронирования.
// Собирает бронирование из сохраненного выбора сессии и контактных данных
// клиента. Проверка актуальности слотов и вставка выполняются в одной
// сериализуемой транзакции, чтобы исключить гонку между сессиями.
type UseCase struct {
	catalogRepo    CatalogRepository
	bookingRepo    BookingRepository
	selectionStore SelectionStore
	txManager      TransactionManager
	policy         Policy
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	selectionStore SelectionStore,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:    catalogRepo,
		bookingRepo:    bookingRepo,
		selectionStore: selectionStore,
		txManager:      txManager,
		policy:         policy,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, salon=%d, service=%d",
		req.SessionID, req.SalonID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем сохраненный выбор сессии
	selection, err := uc.selectionStore.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, selectionStore.ErrSelectionNotFound) {
			uc.logger.Warn("CreateBooking: no selection for session=%s", req.SessionID)
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("CreateBooking: failed to load selection for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load selection: %v", ErrInternal, err)
	}

	// 4. Получаем салон
	salon, err := uc.catalogRepo.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateBooking: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 5. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Выбор должен быть полным и относиться к запрошенным салону и услуге
	if selection.SalonID != req.SalonID || selection.ServiceID != req.ServiceID {
		uc.logger.Warn("CreateBooking: selection context mismatch for session=%s", req.SessionID)
		return nil, fmt.Errorf("%w: selection belongs to another salon or service", ErrSelectionIncomplete)
	}

	if !selection.IsComplete() || len(selection.SlotIDs) != service.RequiredSlots() {
		uc.logger.Warn("CreateBooking: selection incomplete for session=%s: have %d, need %d",
			req.SessionID, len(selection.SlotIDs), service.RequiredSlots())
		return nil, fmt.Errorf("%w: %d of %d slots selected",
			ErrSelectionIncomplete, len(selection.SlotIDs), service.RequiredSlots())
	}

	// 7. Валидация даты выбора с учетом политики бронирования
	if err := validateDate(selection.Date, now, uc.policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 8. Время начала - время первого слота выбора
	_, startTime, err := domain.ParseSlotID(selection.SlotIDs[0])
	if err != nil {
		uc.logger.Error("CreateBooking: malformed slot id in selection: %v", err)
		return nil, fmt.Errorf("%w: malformed selection: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		ConfirmationCode: uuid.New().String(),
		SessionID:        req.SessionID,
		SalonID:          req.SalonID,
		ServiceID:        req.ServiceID,
		BookingDate:      selection.Date,
		StartTime:        startTime,
		DurationMinutes:  service.DurationMinutes,
		TimeSlots:        selection.SlotIDs,
		Status:           domain.StatusConfirmed,
		CustomerName:     strings.TrimSpace(req.CustomerName),
		CustomerEmail:    strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:    strings.TrimSpace(req.CustomerPhone),
		Notes:            req.Notes,
		ServiceName:      service.Name,
		ServicePrice:     service.Price,
	}

	// 9. Проверяем занятость и создаем бронирование атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Перечитываем бронирования дня с блокировкой строк (FOR UPDATE)
		filter := domain.SalonBookingsFilter{
			SalonID:         req.SalonID,
			StartDate:       ptr.Ptr(selection.Date),
			EndDate:         ptr.Ptr(selection.Date),
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetBySalonWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.2. Перестраиваем каталог слотов по актуальному состоянию ledger
		blocks, err := uc.catalogRepo.GetSlotBlocks(txCtx, req.SalonID, selection.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get slot blocks: %v", ErrInternal, err)
		}

		grid, err := generateTimeGrid(salon.EffectiveOpenTime(), salon.EffectiveCloseTime())
		if err != nil {
			return fmt.Errorf("%w: failed to generate time grid: %v", ErrInternal, err)
		}

		slots := buildSlotCatalog(
			selection.Date,
			grid,
			blocks,
			bookings,
			salon.EffectiveCapacity(),
			now,
			uc.policy.MinBookingNoticeMinutes,
		)

		byID := make(map[string]*domain.TimeSlot, len(slots))
		for i := range slots {
			byID[slots[i].ID] = &slots[i]
		}

		// 9.3. Каждый выбранный слот должен оставаться доступным
		for _, slotID := range selection.SlotIDs {
			slot, ok := byID[slotID]
			if !ok {
				return fmt.Errorf("%w: slot %s is outside business hours", ErrSlotNotAvailable, slotID)
			}
			if !slot.IsBookable() {
				return fmt.Errorf("%w: slot %s", ErrSlotNotAvailable, slotID)
			}
		}

		// 9.4. Вставляем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		booking = created
		return nil
	})

	if err != nil {
		uc.logger.Warn("CreateBooking: transaction failed for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 10. Очищаем выбор сессии (best-effort: бронирование уже создано)
	if err := uc.selectionStore.Delete(ctx, req.SessionID); err != nil {
		uc.logger.Error("CreateBooking: failed to clear selection for session=%s: %v", req.SessionID, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d, code=%s for session=%s",
		booking.ID, booking.ConfirmationCode, req.SessionID)

	return &Response{Booking: booking}, nil
}
