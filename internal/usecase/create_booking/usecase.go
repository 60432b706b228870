package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	barbershopRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/barbershop"
	bookingRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Barber-BookingService/internal/integrations/payment"
	"github.com/m04kA/Barber-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	barbershopRepo BarbershopRepository
	paymentClient  PaymentClient
	txManager      TransactionManager
	redirects      PaymentRedirects
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	barbershopRepo BarbershopRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	redirects PaymentRedirects,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		barbershopRepo: barbershopRepo,
		paymentClient:  paymentClient,
		txManager:      txManager,
		redirects:      redirects,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции с блокировкой бронирований на дату (FOR UPDATE): из двух
// конкурентных запросов на один ключ (barbershop, дата, время) ровно один
// успешен, второй детерминированно получает ErrSlotNotAvailable. Частичный
// уникальный индекс в БД страхует тот же инвариант на уровне хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, barbershop=%d, service=%d, date=%s, time=%s, method=%s",
		req.UserID, req.BarbershopID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что момент начала строго в будущем
	if err := validateNotInPast(req, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time in the past: user=%d, date=%s, time=%s",
			req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	// 4. Получаем барбершоп
	shop, err := uc.barbershopRepo.GetByID(ctx, req.BarbershopID)
	if err != nil {
		if errors.Is(err, barbershopRepo.ErrBarbershopNotFound) {
			uc.logger.Warn("CreateBooking: barbershop id=%d not found", req.BarbershopID)
			return nil, ErrBarbershopNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barbershop id=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	// 5. Получаем услугу (с проверкой принадлежности барбершопу)
	service, err := uc.barbershopRepo.GetService(ctx, req.BarbershopID, req.ServiceID)
	if err != nil {
		if errors.Is(err, barbershopRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found in barbershop id=%d", req.ServiceID, req.BarbershopID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Проверяем, что время принадлежит каталогу слотов
	if err := validateSlotOnCatalog(shop, req); err != nil {
		uc.logger.Warn("CreateBooking: time %s is not a catalog slot of barbershop id=%d", req.StartTime, req.BarbershopID)
		return nil, err
	}

	// Статус зависит от способа оплаты: карта подтверждается асинхронно
	// платёжным сервисом, оплата на месте подтверждена сразу
	initialStatus := domain.StatusConfirmed
	if req.PaymentMethod == domain.PaymentMethodCard {
		initialStatus = domain.StatusPending
	}

	var result *domain.Booking

	// 7. Проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем все активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BarbershopBookingsFilter{
			BarbershopID:    req.BarbershopID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false, // Только активные бронирования занимают слот
		}

		bookings, err := uc.bookingRepo.GetByBarbershopWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 7.2. Слот занят, если активное бронирование уже держит этот ключ
		for _, b := range bookings {
			if b.StartTime == req.StartTime {
				uc.logger.Warn("CreateBooking: slot %s already taken by booking id=%d", req.StartTime, b.ID)
				return ErrSlotNotAvailable
			}
		}

		// 7.3. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			UserID:            req.UserID,
			BarbershopID:      req.BarbershopID,
			ServiceID:         req.ServiceID,
			BookingDate:       req.Date,
			StartTime:         req.StartTime,
			Status:            initialStatus,
			PaymentMethod:     req.PaymentMethod,
			ServiceName:       service.Name,
			ServicePriceCents: service.PriceCents,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс сработал раньше нашей проверки - тот же конфликт слота
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken concurrently", req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	response := &Response{
		ID:                result.ID,
		UserID:            result.UserID,
		BarbershopID:      result.BarbershopID,
		ServiceID:         result.ServiceID,
		BookingDate:       result.BookingDate,
		StartTime:         result.StartTime,
		Status:            string(result.Status),
		PaymentMethod:     string(result.PaymentMethod),
		ServiceName:       result.ServiceName,
		ServicePriceCents: result.ServicePriceCents,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}

	// 8. Для оплаты картой создаем checkout-сессию у платёжного сервиса.
	// Бронирование уже существует и остаётся pending независимо от исхода:
	// источник правды - запись в БД, а не успех downstream-вызова.
	if req.PaymentMethod == domain.PaymentMethodCard {
		session, err := uc.paymentClient.CreateCheckoutSession(ctx, &payment.CheckoutSessionRequest{
			BookingID:   result.ID,
			AmountCents: service.PriceCents,
			Currency:    uc.redirects.Currency,
			Description: fmt.Sprintf("%s - %s, %s %s", shop.Name, service.Name, result.BookingDate.Format(domain.DateFormat), result.StartTime),
			SuccessURL:  uc.redirects.SuccessURL,
			CancelURL:   uc.redirects.CancelURL,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create checkout session for booking id=%d: %v", result.ID, err)
		} else {
			response.PaymentURL = session.URL
		}
	}

	return response, nil
}
