package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	barbershopRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/barbershop"
	"github.com/m04kA/Barber-BookingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	barbershopRepo BarbershopRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	barbershopRepo BarbershopRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		barbershopRepo: barbershopRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Чтение снапшотное, без какой-либо синхронизации: конкурентное создание
// бронирования разрешается не здесь, а в точке сериализации create_booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barbershop=%d, date=%s",
		req.BarbershopID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем барбершоп (и его каталог слотов)
	shop, err := uc.barbershopRepo.GetByID(ctx, req.BarbershopID)
	if err != nil {
		if errors.Is(err, barbershopRepo.ErrBarbershopNotFound) {
			uc.logger.Warn("GetAvailableSlots: barbershop id=%d not found", req.BarbershopID)
			return nil, ErrBarbershopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barbershop id=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	// 4. Генерируем каталог слотов
	catalog, err := shop.Catalog().Slots()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slot catalog for barbershop id=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to build slot catalog: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования на эту дату
	filter := domain.BarbershopBookingsFilter{
		BarbershopID:    req.BarbershopID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false, // Только активные бронирования занимают слоты
	}

	bookings, err := uc.bookingRepo.GetByBarbershopWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем свободные слоты
	slots := availableSlots(catalog, bookings, req.Date, now)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for barbershop=%d, date=%s",
		len(slots), len(catalog), req.BarbershopID, req.Date.Format(domain.DateFormat))

	return &Response{
		BarbershopID: req.BarbershopID,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}
