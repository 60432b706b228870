package barbershops

import (
	"context"

	"github.com/m04kA/Barber-BookingService/internal/domain"
)

// BarbershopRepository интерфейс репозитория барбершопов
type BarbershopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barbershop, error)
	List(ctx context.Context) ([]*domain.Barbershop, error)
	ListServices(ctx context.Context, barbershopID int64) ([]*domain.BarberService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
