package get_available_slots

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarbershopID int64     // ID барбершопа
	Date         time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	BarbershopID int64              // ID барбершопа
	Date         time.Time          // Дата, на которую запрашивались слоты
	Slots        []types.TimeString // Упорядоченный список свободных слотов
}
