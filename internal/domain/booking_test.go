package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_DerivedStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    BookingStatus
		date      time.Time
		startTime string
		want      BookingStatus
	}{
		{"pending stays pending", StatusPending, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), "10:00", StatusPending},
		{"future confirmed stays confirmed", StatusConfirmed, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), "10:00", StatusConfirmed},
		{"past confirmed becomes finished", StatusConfirmed, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "10:00", StatusFinished},
		{"confirmed at exact start instant is finished", StatusConfirmed, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "12:00", StatusFinished},
		{"past pending stays pending", StatusPending, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "10:00", StatusPending},
		{"cancelled stays cancelled", StatusCancelled, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "10:00", StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{
				Status:      tt.status,
				BookingDate: tt.date,
				StartTime:   mustTimeString(t, tt.startTime),
			}
			assert.Equal(t, tt.want, b.DerivedStatus(now))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_StartsAt(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:   mustTimeString(t, "10:30"),
	}
	assert.Equal(t, time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC), b.StartsAt())
}
