package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/salonsphere/booking-service/internal/infra/storage/catalog"
	"github.com/salonsphere/booking-service/internal/service/catalog/models"
)

// Service сервис каталога салонов и услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListSalons получает список всех салонов
func (s *Service) ListSalons(ctx context.Context) (*models.SalonListResponse, error) {
	salons, err := s.catalogRepo.ListSalons(ctx)
	if err != nil {
		s.logger.Error("ListSalons: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSalons - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSalons: successfully fetched %d salons", len(salons))
	return models.FromDomainSalonList(salons), nil
}

// GetSalon получает салон по ID
func (s *Service) GetSalon(ctx context.Context, id int64) (*models.SalonResponse, error) {
	salon, err := s.catalogRepo.GetSalon(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSalon: salon id=%d not found", id)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalon: repository error for salon id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSalon - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSalon(salon), nil
}

// ListSalonServices получает список услуг салона
func (s *Service) ListSalonServices(ctx context.Context, salonID int64) (*models.ServiceListResponse, error) {
	// Проверяем, что салон существует
	if _, err := s.catalogRepo.GetSalon(ctx, salonID); err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			s.logger.Warn("ListSalonServices: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListSalonServices: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListSalonServices - repository error: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServicesBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("ListSalonServices: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListSalonServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSalonServices: successfully fetched %d services for salon id=%d", len(services), salonID)
	return models.FromDomainServiceList(services), nil
}

// ListServiceReviews получает отзывы на услугу
func (s *Service) ListServiceReviews(ctx context.Context, salonID, serviceID int64) (*models.ReviewListResponse, error) {
	// Проверяем, что услуга существует в этом салоне
	if _, err := s.catalogRepo.GetService(ctx, salonID, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("ListServiceReviews: service id=%d not found in salon id=%d", serviceID, salonID)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			s.logger.Warn("ListServiceReviews: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListServiceReviews: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListServiceReviews - repository error: %v", ErrInternal, err)
	}

	reviews, err := s.catalogRepo.ListReviewsByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListServiceReviews: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListServiceReviews - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServiceReviews: successfully fetched %d reviews for service id=%d", len(reviews), serviceID)
	return models.FromDomainReviewList(reviews), nil
}
