package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	barbershopRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/barbershop"
	"github.com/m04kA/Barber-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings []*domain.Booking
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
	shop *domain.Barbershop
}

func (f *fakeBarbershopRepo) GetByID(_ context.Context, id int64) (*domain.Barbershop, error) {
	if f.shop == nil || f.shop.ID != id {
		return nil, barbershopRepo.ErrBarbershopNotFound
	}
	return f.shop, nil
}

func testShop() *domain.Barbershop {
	return &domain.Barbershop{
		ID:                  1,
		Name:                "Vintage Barber",
		OpenTime:            "09:00",
		CloseTime:           "11:00",
		SlotDurationMinutes: 30,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, shops *fakeBarbershopRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, shops, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestExecute_FullCatalogWhenNoBookings(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{shop: testShop()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarbershopID: 1,
		Date:         time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStrings(resp.Slots))
}

func TestExecute_ActiveBookingsOccupySlots(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BarbershopID: 1, BookingDate: date, StartTime: "09:30", Status: domain.StatusPending},
		{ID: 2, BarbershopID: 1, BookingDate: date, StartTime: "10:30", Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookings, &fakeBarbershopRepo{shop: testShop()}, now)

	resp, err := uc.Execute(context.Background(), &Request{BarbershopID: 1, Date: date})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, slotStrings(resp.Slots))
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BarbershopID: 1, BookingDate: date, StartTime: "09:30", Status: domain.StatusCancelled},
	}}
	uc := newTestUseCase(bookings, &fakeBarbershopRepo{shop: testShop()}, now)

	resp, err := uc.Execute(context.Background(), &Request{BarbershopID: 1, Date: date})

	require.NoError(t, err)
	assert.Contains(t, slotStrings(resp.Slots), "09:30")
}

func TestExecute_TodayFiltersElapsedSlots(t *testing.T) {
	// В 09:15 слот 09:00 уже недоступен, 09:30 - ещё доступен
	now := time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{shop: testShop()}, now)

	resp, err := uc.Execute(context.Background(), &Request{BarbershopID: 1, Date: today})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "10:00", "10:30"}, slotStrings(resp.Slots))
}

func TestExecute_SlotAtExactCurrentMinuteUnavailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{shop: testShop()}, now)

	resp, err := uc.Execute(context.Background(), &Request{BarbershopID: 1, Date: today})

	require.NoError(t, err)
	assert.NotContains(t, slotStrings(resp.Slots), "09:30")
	assert.Contains(t, slotStrings(resp.Slots), "10:00")
}

func TestExecute_PastDateHasNoSlots(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{shop: testShop()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarbershopID: 1,
		Date:         time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BarbershopNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBarbershopRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BarbershopID: 42,
		Date:         time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrBarbershopNotFound)
}

func TestAvailableSlots_PreservesCatalogOrder(t *testing.T) {
	catalog := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{BarbershopID: 1, BookingDate: date, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	free := availableSlots(catalog, bookings, date, now)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30"}, free)
}
