package domain

import "github.com/m04kA/Barber-BookingService/pkg/types"

// SlotCatalog defines the fixed ordered set of bookable time-of-day values for
// a barbershop: every SlotDurationMinutes step from OpenTime while the slot
// still ends no later than CloseTime. Slots are computed on demand, never stored.
type SlotCatalog struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
}

// Slots возвращает упорядоченный список всех слотов каталога
func (c SlotCatalog) Slots() ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := c.OpenTime

	for current.IsBefore(c.CloseTime) {
		slotEnd, err := current.AddMinutes(c.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(c.CloseTime) {
			break
		}

		slots = append(slots, current)

		current, err = current.AddMinutes(c.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// Contains проверяет, что время start принадлежит каталогу слотов
func (c SlotCatalog) Contains(start types.TimeString) (bool, error) {
	slots, err := c.Slots()
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot == start {
			return true, nil
		}
	}
	return false, nil
}
