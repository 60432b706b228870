package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BarbershopID <= 0 {
		return fmt.Errorf("%w: barbershopID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.PaymentMethod != domain.PaymentMethodCard && req.PaymentMethod != domain.PaymentMethodOnSite {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	return nil
}

// validateNotInPast проверяет, что момент начала слота строго в будущем.
// Сравнивается точный момент (дата + время), а не только дата: бронирование
// на сегодня в уже прошедшее время тоже отклоняется.
func validateNotInPast(req *Request, now time.Time) error {
	startsAt := req.StartTime.On(req.Date)
	if !startsAt.After(now) {
		return ErrPastTimestamp
	}
	return nil
}

// validateSlotOnCatalog проверяет, что время принадлежит каталогу слотов барбершопа
func validateSlotOnCatalog(shop *domain.Barbershop, req *Request) error {
	ok, err := shop.Catalog().Contains(req.StartTime)
	if err != nil {
		return fmt.Errorf("%w: failed to build slot catalog: %v", ErrInternal, err)
	}
	if !ok {
		return ErrInvalidTimeSlot
	}
	return nil
}
