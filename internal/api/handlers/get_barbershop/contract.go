package get_barbershop

import (
	"context"

	"github.com/m04kA/Barber-BookingService/internal/service/barbershops/models"
)

type BarbershopService interface {
	GetByID(ctx context.Context, id int64) (*models.BarbershopDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
