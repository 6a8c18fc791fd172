package select_time_slot

import "github.com/salonsphere/booking-service/internal/domain"

// allocateConsecutiveSlots подбирает непрерывный блок слотов вперёд от якорного.
// Блок либо собирается целиком, либо не собирается вовсе: любой занятый,
// заблокированный или переполненный слот внутри блока отменяет весь выбор.
func allocateConsecutiveSlots(slots []domain.TimeSlot, anchorID string, required int) ([]string, error) {
	anchor := -1
	for i := range slots {
		if slots[i].ID == anchorID {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return nil, ErrSlotNotFound
	}

	if anchor+required > len(slots) {
		return nil, ErrInsufficientConsecutiveSlots
	}

	slotIDs := make([]string, 0, required)
	for i := anchor; i < anchor+required; i++ {
		if !slots[i].IsBookable() {
			return nil, ErrInsufficientConsecutiveSlots
		}
		slotIDs = append(slotIDs, slots[i].ID)
	}

	return slotIDs, nil
}
