package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/booking"
)

// UseCase use case подтверждения оплаты бронирования.
// Единственная точка интеграции с асинхронным callback платёжного сервиса:
// чистый переход состояния pending -> confirmed, без какого-либо ожидания оплаты.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute применяет результат оплаты к бронированию.
//
// Переход валиден только из pending. Повторное подтверждение уже
// подтверждённого бронирования - идемпотентный no-op (платёжные сервисы
// доставляют события минимум один раз). Подтверждение отменённого
// бронирования - ErrInvalidTransition: отмена терминальна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// Перечитываем актуальный статус: состоянию вызывающего не доверяем
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	switch booking.Status {
	case domain.StatusConfirmed:
		// Идемпотентный no-op
		uc.logger.Info("ConfirmPayment: booking id=%d already confirmed", req.BookingID)
		return toResponse(booking), nil

	case domain.StatusCancelled:
		uc.logger.Warn("ConfirmPayment: booking id=%d is cancelled, confirmation rejected", req.BookingID)
		return nil, ErrInvalidTransition

	case domain.StatusPending:
		// Продолжаем переход
	default:
		uc.logger.Error("ConfirmPayment: booking id=%d has unexpected status %s", req.BookingID, booking.Status)
		return nil, ErrInvalidTransition
	}

	err = uc.bookingRepo.UpdateStatusIf(ctx, req.BookingID, domain.StatusPending, domain.StatusConfirmed)
	if err != nil {
		// Статус сменился между чтением и обновлением - перечитываем и решаем заново
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			current, getErr := uc.bookingRepo.GetByID(ctx, req.BookingID)
			if getErr != nil {
				uc.logger.Error("ConfirmPayment: failed to re-read booking id=%d: %v", req.BookingID, getErr)
				return nil, fmt.Errorf("%w: failed to re-read booking: %v", ErrInternal, getErr)
			}
			if current.Status == domain.StatusConfirmed {
				uc.logger.Info("ConfirmPayment: booking id=%d confirmed concurrently", req.BookingID)
				return toResponse(current), nil
			}
			uc.logger.Warn("ConfirmPayment: booking id=%d moved to %s concurrently, confirmation rejected",
				req.BookingID, current.Status)
			return nil, ErrInvalidTransition
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to confirm booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed

	uc.logger.Info("ConfirmPayment: booking id=%d confirmed", req.BookingID)
	return toResponse(booking), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		UserID:       b.UserID,
		BarbershopID: b.BarbershopID,
		ServiceID:    b.ServiceID,
		BookingDate:  b.BookingDate,
		StartTime:    b.StartTime,
		Status:       string(b.Status),
		UpdatedAt:    b.UpdatedAt,
	}
}
