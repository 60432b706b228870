package confirm_payment

import (
	"strconv"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	confirmPayment "github.com/m04kA/Barber-BookingService/internal/usecase/confirm_payment"
)

// PaymentEventRequest событие платёжного провайдера.
// Идентификатор бронирования передаётся провайдером в metadata строкой.
type PaymentEventRequest struct {
	Type string               `json:"type"` // например, "checkout.session.completed"
	Data PaymentEventData     `json:"data"`
}

type PaymentEventData struct {
	SessionID string            `json:"sessionId"`
	Metadata  map[string]string `json:"metadata"`
}

// eventCheckoutCompleted единственный тип события, который сервис обрабатывает
const eventCheckoutCompleted = "checkout.session.completed"

// metadataBookingID ключ с ID бронирования в metadata платёжной сессии
const metadataBookingID = "bookingId"

// BookingID извлекает ID бронирования из metadata события
func (r *PaymentEventRequest) BookingID() (int64, error) {
	raw, ok := r.Data.Metadata[metadataBookingID]
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(raw, 10, 64)
}

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	BookingID   int64  `json:"bookingId"`
	Status      string `json:"status"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		BookingID:   resp.ID,
		Status:      resp.Status,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
	}
}
