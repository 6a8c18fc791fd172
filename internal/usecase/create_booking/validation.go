package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/salonsphere/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if err := validateCustomer(req); err != nil {
		return err
	}

	return nil
}

// validateCustomer валидирует контактные данные клиента
func validateCustomer(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if len([]rune(name)) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: customer name must be at least %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength)
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.CustomerEmail)); err != nil {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if countDigits(req.CustomerPhone) < domain.MinCustomerPhoneDigits {
		return fmt.Errorf("%w: customer phone must contain at least %d digits",
			ErrInvalidInput, domain.MinCustomerPhoneDigits)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// countDigits подсчитывает количество цифр в строке
// Телефон валидируется по числу цифр, форматирование (+, скобки, дефисы) игнорируется
func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
