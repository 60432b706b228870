package get_available_slots

import (
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Barber-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BarbershopID int64    `json:"barbershopId"`
	Date         string   `json:"date"`
	Slots        []string `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(barbershopID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BarbershopID: barbershopID,
		Date:         date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		BarbershopID: resp.BarbershopID,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}
