package payment

import "errors"

var (
	// ErrSessionRejected возвращается, когда платёжный сервис отклонил создание сессии
	ErrSessionRejected = errors.New("payment client: checkout session rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payment client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от платёжного сервиса
	ErrInvalidResponse = errors.New("payment client: invalid response")
)
