package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonsphere/booking-service/internal/domain"
	bookingRepo "github.com/salonsphere/booking-service/internal/infra/storage/booking"
	"github.com/salonsphere/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - сессия может видеть только свои бронирования
func (s *Service) GetByID(ctx context.Context, id int64, sessionID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for session=%s", id, sessionID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.SessionID != sessionID {
		s.logger.Warn("GetByID: access denied for session=%s to booking id=%d", sessionID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetSessionBookings получает историю бронирований сессии
// Опционально фильтрует по статусу
func (s *Service) GetSessionBookings(ctx context.Context, req *models.GetSessionBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetSessionBookings: fetching bookings for session=%s, status=%v", req.SessionID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetSessionBookings: invalid status=%s for session=%s", *req.Status, req.SessionID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetBySessionID(ctx, req.SessionID, domainStatus)
	if err != nil {
		s.logger.Error("GetSessionBookings: repository error for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: GetSessionBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSessionBookings: successfully fetched %d bookings for session=%s", len(bookings), req.SessionID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Сессия может отменить только своё бронирование, статус становится cancelled_by_user
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by session=%s", bookingID, req.SessionID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.SessionID != req.SessionID {
		s.logger.Warn("Cancel: access denied for session=%s to booking id=%d", req.SessionID, bookingID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if len([]rune(req.CancellationReason)) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, domain.StatusCancelledByUser, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// CompletePastBookings переводит подтверждённые бронирования прошедших дат
// в статус completed. Запускается по расписанию.
func (s *Service) CompletePastBookings(ctx context.Context, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.bookingRepo.CompletePastBookings(ctx, today)
	if err != nil {
		s.logger.Error("CompletePastBookings: repository error: %v", err)
		return fmt.Errorf("%w: CompletePastBookings - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("CompletePastBookings: completed %d past bookings", count)
	}
	return nil
}
