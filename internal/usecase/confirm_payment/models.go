package confirm_payment

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Request модель запроса на подтверждение оплаты.
// BookingID приходит из metadata платёжного события.
type Request struct {
	BookingID int64
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	ID           int64
	UserID       int64
	BarbershopID int64
	ServiceID    int64
	BookingDate  time.Time
	StartTime    types.TimeString
	Status       string
	UpdatedAt    time.Time
}
