package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Barber-BookingService/internal/api/handlers"
	confirmPayment "github.com/m04kA/Barber-BookingService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования в metadata события"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidTransition  = "бронирование нельзя подтвердить в текущем статусе"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
//
// Провайдер повторяет доставку события при любом не-2xx ответе, поэтому
// повторное подтверждение уже подтверждённого бронирования отвечает 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Чужие типы событий подтверждаем без обработки, чтобы провайдер
	// не копил очередь повторов
	if req.Type != eventCheckoutCompleted {
		h.logger.Info("POST /payments/webhook - Ignoring event: type=%s", req.Type)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	bookingID, err := req.BookingID()
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid booking ID in metadata: session=%s, error=%v",
			req.Data.SessionID, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/webhook - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrInvalidTransition):
			h.logger.Warn("POST /payments/webhook - Invalid transition: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/webhook - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /payments/webhook - Failed to confirm payment: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Payment confirmed: booking_id=%d, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
