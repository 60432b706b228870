package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	barbershopRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/barbershop"
	bookingRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Barber-BookingService/internal/integrations/payment"
	"github.com/m04kA/Barber-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	nextID    int64
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetByBarbershopWithFilter(_ context.Context, filter domain.BarbershopBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.BarbershopID != filter.BarbershopID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeBarbershopRepo struct {
	shop    *domain.Barbershop
	service *domain.BarberService
}

func (f *fakeBarbershopRepo) GetByID(_ context.Context, id int64) (*domain.Barbershop, error) {
	if f.shop == nil || f.shop.ID != id {
		return nil, barbershopRepo.ErrBarbershopNotFound
	}
	return f.shop, nil
}

func (f *fakeBarbershopRepo) GetService(_ context.Context, barbershopID, serviceID int64) (*domain.BarberService, error) {
	if f.service == nil || f.service.ID != serviceID || f.service.BarbershopID != barbershopID {
		return nil, barbershopRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakePaymentClient struct {
	session *payment.CheckoutSession
	err     error
	calls   int
}

func (f *fakePaymentClient) CreateCheckoutSession(_ context.Context, _ *payment.CheckoutSessionRequest) (*payment.CheckoutSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testShop() *domain.Barbershop {
	return &domain.Barbershop{
		ID:                  1,
		Name:                "Vintage Barber",
		OpenTime:            "09:00",
		CloseTime:           "18:30",
		SlotDurationMinutes: 30,
	}
}

func testService() *domain.BarberService {
	return &domain.BarberService{
		ID:           10,
		BarbershopID: 1,
		Name:         "Стрижка",
		PriceCents:   150000,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, shops *fakeBarbershopRepo, pay *fakePaymentClient, now time.Time) *UseCase {
	uc := NewUseCase(
		bookings,
		shops,
		pay,
		inlineTxManager{},
		PaymentRedirects{
			SuccessURL: "https://example.com/success",
			CancelURL:  "https://example.com/cancel",
			Currency:   "RUB",
		},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_OnSitePaymentConfirmedImmediately(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	pay := &fakePaymentClient{}
	uc := newTestUseCase(bookings, shops, pay, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		BarbershopID:  1,
		ServiceID:     10,
		Date:          time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "10:00"),
		PaymentMethod: domain.PaymentMethodOnSite,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Empty(t, resp.PaymentURL)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, int64(150000), resp.ServicePriceCents)
	assert.Zero(t, pay.calls)
}

func TestExecute_CardPaymentStartsPendingWithCheckout(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	pay := &fakePaymentClient{session: &payment.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}}
	uc := newTestUseCase(bookings, shops, pay, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		BarbershopID:  1,
		ServiceID:     10,
		Date:          time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "10:00"),
		PaymentMethod: domain.PaymentMethodCard,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "https://pay.example.com/cs_1", resp.PaymentURL)
	assert.Equal(t, 1, pay.calls)
}

func TestExecute_CheckoutFailureKeepsBooking(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	pay := &fakePaymentClient{err: payment.ErrInternal}
	uc := newTestUseCase(bookings, shops, pay, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		BarbershopID:  1,
		ServiceID:     10,
		Date:          time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "10:00"),
		PaymentMethod: domain.PaymentMethodCard,
	})

	// Бронирование создано и остаётся pending, ссылки на оплату нет
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Empty(t, resp.PaymentURL)
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{{
			ID:           100,
			UserID:       3,
			BarbershopID: 1,
			BookingDate:  date,
			StartTime:    "10:00",
			Status:       domain.StatusConfirmed,
		}},
		nextID: 100,
	}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	uc := newTestUseCase(bookings, shops, &fakePaymentClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		BarbershopID:  1,
		ServiceID:     10,
		Date:          date,
		StartTime:     mustTime(t, "10:00"),
		PaymentMethod: domain.PaymentMethodOnSite,
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingDoesNotHoldSlot(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{{
			ID:           100,
			UserID:       3,
			BarbershopID: 1,
			BookingDate:  date,
			StartTime:    "10:00",
			Status:       domain.StatusCancelled,
		}},
		nextID: 100,
	}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	uc := newTestUseCase(bookings, shops, &fakePaymentClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		BarbershopID:  1,
		ServiceID:     10,
		Date:          date,
		StartTime:     mustTime(t, "10:00"),
		PaymentMethod: domain.PaymentMethodOnSite,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_UniqueIndexRaceMapsToSlotNotAvailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	uc := newTestUseCase(bookings, shops, &fakePaymentClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		BarbershopID:  1,
		ServiceID:     10,
		Date:          time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "10:00"),
		PaymentMethod: domain.PaymentMethodOnSite,
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastTimestampRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	uc := newTestUseCase(bookings, shops, &fakePaymentClient{}, now)

	tests := []struct {
		name      string
		date      time.Time
		startTime string
	}{
		{"yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "10:00"},
		{"earlier today", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "11:30"},
		{"exactly now", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				UserID:        7,
				BarbershopID:  1,
				ServiceID:     10,
				Date:          tt.date,
				StartTime:     mustTime(t, tt.startTime),
				PaymentMethod: domain.PaymentMethodOnSite,
			})
			assert.ErrorIs(t, err, ErrPastTimestamp)
		})
	}
}

func TestExecute_TimeOutsideCatalogRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{}
	shops := &fakeBarbershopRepo{shop: testShop(), service: testService()}
	uc := newTestUseCase(bookings, shops, &fakePaymentClient{}, now)

	tests := []struct {
		name      string
		startTime string
	}{
		{"off-grid minute", "10:15"},
		{"before opening", "08:30"},
		{"slot would cross closing", "18:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				UserID:        7,
				BarbershopID:  1,
				ServiceID:     10,
				Date:          time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
				StartTime:     mustTime(t, tt.startTime),
				PaymentMethod: domain.PaymentMethodOnSite,
			})
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
}

func TestExecute_NotFoundErrors(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("barbershop not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{}, &fakePaymentClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{
			UserID:        7,
			BarbershopID:  99,
			ServiceID:     10,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			PaymentMethod: domain.PaymentMethodOnSite,
		})
		assert.ErrorIs(t, err, ErrBarbershopNotFound)
	})

	t.Run("service from another barbershop", func(t *testing.T) {
		service := testService()
		service.BarbershopID = 2
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{shop: testShop(), service: service}, &fakePaymentClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{
			UserID:        7,
			BarbershopID:  1,
			ServiceID:     10,
			Date:          date,
			StartTime:     mustTime(t, "10:00"),
			PaymentMethod: domain.PaymentMethodOnSite,
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{shop: testShop(), service: testService()}, &fakePaymentClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		BarbershopID:  1,
		ServiceID:     10,
		Date:          time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "10:00"),
		PaymentMethod: "crypto",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
