package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Barber-BookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	cancelErr error
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !b.IsActive() {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = domain.StatusCancelled
	cancelledAt := time.Now()
	b.CancelledAt = &cancelledAt
	return nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeBookingRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func futureBooking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		UserID:        userID,
		BarbershopID:  1,
		ServiceID:     10,
		BookingDate:   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		Status:        status,
		PaymentMethod: domain.PaymentMethodOnSite,
	}
}

func TestGetByID_OwnerSeesBooking(t *testing.T) {
	repo := newFakeBookingRepo(futureBooking(1, 7, domain.StatusConfirmed))
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := newFakeBookingRepo(futureBooking(1, 7, domain.StatusConfirmed))
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 1, 8)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_FinishedStatusDerived(t *testing.T) {
	past := futureBooking(1, 7, domain.StatusConfirmed)
	past.BookingDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(past)
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusFinished), resp.Status)
}

func TestCancel_OwnerCancelsFutureBooking(t *testing.T) {
	repo := newFakeBookingRepo(futureBooking(1, 7, domain.StatusConfirmed))
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
}

func TestCancel_ForeignBookingDeniedAndUnchanged(t *testing.T) {
	booking := futureBooking(1, 7, domain.StatusConfirmed)
	repo := newFakeBookingRepo(booking)
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 8})

	assert.ErrorIs(t, err, ErrAccessDenied)
	// Статус не изменился
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Nil(t, booking.CancelledAt)
}

func TestCancel_PastBookingRejected(t *testing.T) {
	past := futureBooking(1, 7, domain.StatusConfirmed)
	past.BookingDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(past)
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyCancelledRejected(t *testing.T) {
	repo := newFakeBookingRepo(futureBooking(1, 7, domain.StatusCancelled))
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ConcurrentStatusChangeRejected(t *testing.T) {
	repo := newFakeBookingRepo(futureBooking(1, 7, domain.StatusConfirmed))
	repo.cancelErr = bookingRepo.ErrStatusChanged
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_GroupedByDerivedStatus(t *testing.T) {
	pending := futureBooking(1, 7, domain.StatusPending)
	confirmed := futureBooking(2, 7, domain.StatusConfirmed)
	confirmed.StartTime = "11:00"
	finished := futureBooking(3, 7, domain.StatusConfirmed)
	finished.BookingDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	cancelled := futureBooking(4, 7, domain.StatusCancelled)
	foreign := futureBooking(5, 8, domain.StatusConfirmed)

	repo := newFakeBookingRepo(pending, confirmed, finished, cancelled, foreign)
	svc := newTestService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})

	require.NoError(t, err)
	assert.Len(t, resp.Pending, 1)
	assert.Len(t, resp.Confirmed, 1)
	assert.Len(t, resp.Finished, 1)
	assert.Len(t, resp.Cancelled, 1)
	assert.Equal(t, int64(1), resp.Pending[0].ID)
	assert.Equal(t, int64(2), resp.Confirmed[0].ID)
	assert.Equal(t, int64(3), resp.Finished[0].ID)
	assert.Equal(t, int64(4), resp.Cancelled[0].ID)
}

func TestGetUserBookings_InvalidUserID(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
