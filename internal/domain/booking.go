package domain

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// BookingStatus represents the stored status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"

	// StatusFinished is never stored: it is derived at read time from a confirmed
	// booking whose start instant is at or before now. Keeping it out of the database
	// avoids a background job flipping rows over as time passes.
	StatusFinished BookingStatus = "finished"
)

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"    // оплата картой через платёжный сервис
	PaymentMethodOnSite PaymentMethod = "on_site" // оплата на месте
)

// Booking represents a scheduled appointment at a barbershop
type Booking struct {
	ID           int64
	UserID       int64
	BarbershopID int64
	ServiceID    int64
	BookingDate  time.Time
	StartTime    types.TimeString
	Status       BookingStatus

	PaymentMethod PaymentMethod

	// Denormalized data for history: the price the user actually agreed to,
	// untouched by later service edits
	ServiceName       string
	ServicePriceCents int64

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartsAt returns the exact instant the appointment begins
func (b *Booking) StartsAt() time.Time {
	return b.StartTime.On(b.BookingDate)
}

// IsActive returns true if the booking occupies its slot
// (counts against the exclusivity guarantee)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsFinished returns true if the booking is confirmed and its start instant has passed
func (b *Booking) IsFinished(now time.Time) bool {
	return b.Status == StatusConfirmed && !b.StartsAt().After(now)
}

// CanBeCancelled returns true if the stored status permits cancellation.
// The time rule (no cancelling past appointments) is checked separately.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// DerivedStatus returns the status for display: confirmed bookings whose start
// instant has passed are reported as finished, everything else as stored.
func (b *Booking) DerivedStatus(now time.Time) BookingStatus {
	if b.IsFinished(now) {
		return StatusFinished
	}
	return b.Status
}

// BarbershopBookingsFilter фильтр для выборки бронирований барбершопа
type BarbershopBookingsFilter struct {
	BarbershopID    int64      // Обязательный параметр
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	IncludeInactive bool       // Включать ли отменённые бронирования
}
