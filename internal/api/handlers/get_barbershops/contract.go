package get_barbershops

import (
	"context"

	"github.com/m04kA/Barber-BookingService/internal/service/barbershops/models"
)

type BarbershopService interface {
	List(ctx context.Context) (*models.BarbershopListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
