package payment

// CheckoutSessionRequest запрос на создание checkout-сессии.
// BookingID уходит в metadata сессии - по нему webhook коррелирует
// результат оплаты с бронированием.
type CheckoutSessionRequest struct {
	BookingID   int64  `json:"booking_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
}

// CheckoutSession созданная checkout-сессия
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"` // Redirect target для клиента
}

// ErrorResponse модель ошибки от платёжного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
