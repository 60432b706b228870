package create_booking

import (
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	createBooking "github.com/m04kA/Barber-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Идентификатор пользователя берётся из контекста (заголовок X-User-ID),
// а не из тела запроса.
type CreateBookingRequest struct {
	BarbershopID  int64  `json:"barbershopId"`
	ServiceID     int64  `json:"serviceId"`
	BookingDate   string `json:"bookingDate"`   // "2025-10-15"
	StartTime     string `json:"startTime"`     // "10:00"
	PaymentMethod string `json:"paymentMethod"` // "card" или "on_site"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"userId"`
	BarbershopID      int64  `json:"barbershopId"`
	ServiceID         int64  `json:"serviceId"`
	BookingDate       string `json:"bookingDate"`
	StartTime         string `json:"startTime"`
	Status            string `json:"status"`
	PaymentMethod     string `json:"paymentMethod"`
	ServiceName       string `json:"serviceName"`
	ServicePriceCents int64  `json:"servicePriceCents"`
	PaymentURL        string `json:"paymentUrl,omitempty"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		BarbershopID:  r.BarbershopID,
		ServiceID:     r.ServiceID,
		Date:          bookingDate,
		StartTime:     startTime,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		UserID:            resp.UserID,
		BarbershopID:      resp.BarbershopID,
		ServiceID:         resp.ServiceID,
		BookingDate:       resp.BookingDate.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		Status:            resp.Status,
		PaymentMethod:     resp.PaymentMethod,
		ServiceName:       resp.ServiceName,
		ServicePriceCents: resp.ServicePriceCents,
		PaymentURL:        resp.PaymentURL,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
