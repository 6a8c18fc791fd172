package domain

// ServiceGender identifies gender-specific services
type ServiceGender string

const (
	ServiceGenderMen    ServiceGender = "men"
	ServiceGenderWomen  ServiceGender = "women"
	ServiceGenderUnisex ServiceGender = "unisex"
)

// Service represents a bookable salon service. Immutable reference data,
// belongs to exactly one salon.
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Gender          ServiceGender
	ImageURL        *string
}

// RequiredSlots returns how many consecutive 15-minute slots the service
// needs: ceil(duration / 15), never less than one.
func (s *Service) RequiredSlots() int {
	if s == nil || s.DurationMinutes <= 0 {
		return 1
	}
	return (s.DurationMinutes + SlotStepMinutes - 1) / SlotStepMinutes
}

// Review is a customer review for a service. Read-only catalog data,
// unrelated to slot allocation.
type Review struct {
	ID           int64
	ServiceID    int64
	CustomerName string
	Rating       int // 1-5
	Comment      string
	ReviewDate   string // YYYY-MM-DD
}
