package models

import "github.com/salonsphere/booking-service/internal/domain"

// SalonResponse ответ с данными салона
type SalonResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Type        string  `json:"type"`
	Capacity    int     `json:"capacity"`
	OpenTime    string  `json:"openTime"`
	CloseTime   string  `json:"closeTime"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// SalonListResponse ответ со списком салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	SalonID         int64   `json:"salonId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Gender          string  `json:"gender"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	RequiredSlots   int     `json:"requiredSlots"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID           int64  `json:"id"`
	ServiceID    int64  `json:"serviceId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewDate   string `json:"reviewDate"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// Методы конвертации

// FromDomainSalon конвертирует domain модель в DTO
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	if s == nil {
		return nil
	}

	return &SalonResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Address:     s.Address,
		Phone:       s.Phone,
		Type:        string(s.Type),
		Capacity:    s.EffectiveCapacity(),
		OpenTime:    s.EffectiveOpenTime().String(),
		CloseTime:   s.EffectiveCloseTime().String(),
		ImageURL:    s.ImageURL,
	}
}

// FromDomainSalonList конвертирует список domain моделей в DTO
func FromDomainSalonList(salons []*domain.Salon) *SalonListResponse {
	resp := &SalonListResponse{
		Salons: make([]SalonResponse, 0, len(salons)),
	}

	for _, salon := range salons {
		if salonResp := FromDomainSalon(salon); salonResp != nil {
			resp.Salons = append(resp.Salons, *salonResp)
		}
	}

	return resp
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		SalonID:         s.SalonID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Gender:          string(s.Gender),
		ImageURL:        s.ImageURL,
		RequiredSlots:   s.RequiredSlots(),
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, service := range services {
		if serviceResp := FromDomainService(service); serviceResp != nil {
			resp.Services = append(resp.Services, *serviceResp)
		}
	}

	return resp
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:           r.ID,
		ServiceID:    r.ServiceID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewDate:   r.ReviewDate,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}
