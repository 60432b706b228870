package create_booking

import (
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64                // ID пользователя (из сессии, не из тела запроса)
	BarbershopID  int64                // ID барбершопа
	ServiceID     int64                // ID услуги
	Date          time.Time            // Дата бронирования (без времени)
	StartTime     types.TimeString     // Время начала слота (например, "10:00")
	PaymentMethod domain.PaymentMethod // card или on_site
}

// PaymentRedirects адреса возврата клиента после оплаты
type PaymentRedirects struct {
	SuccessURL string
	CancelURL  string
	Currency   string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	BarbershopID  int64
	ServiceID     int64
	BookingDate   time.Time
	StartTime     types.TimeString
	Status        string
	PaymentMethod string

	// Денормализованные данные услуги
	ServiceName       string
	ServicePriceCents int64

	// Redirect target для оплаты картой; пустой для оплаты на месте
	PaymentURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
