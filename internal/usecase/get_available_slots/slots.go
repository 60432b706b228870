package get_available_slots

import (
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// availableSlots вычисляет свободные слоты: каталог минус занятые активными
// бронированиями, с сохранением порядка каталога.
//
// Если запрошенная дата - сегодня, дополнительно отбрасываются слоты, время
// которых не строго позже текущего: слот "09:00" в 09:15 уже недоступен,
// слот "09:30" - ещё доступен.
func availableSlots(
	catalog []types.TimeString,
	bookings []*domain.Booking,
	requestDate time.Time,
	now time.Time,
) []types.TimeString {
	// Дата целиком в прошлом - свободных слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}
	}

	occupied := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		// Отменённые бронирования слот не занимают
		if !b.IsActive() {
			continue
		}
		occupied[b.StartTime] = struct{}{}
	}

	today := isSameDay(requestDate, now)
	currentTime := types.NewTimeString(now)

	free := make([]types.TimeString, 0, len(catalog))
	for _, slot := range catalog {
		if _, taken := occupied[slot]; taken {
			continue
		}
		if today && !slot.IsAfter(currentTime) {
			continue
		}
		free = append(free, slot)
	}

	return free
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
