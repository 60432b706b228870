package domain

// Default slot catalog values, applied when a barbershop row carries no overrides
const (
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "18:30"
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих слот.
// Используется в фильтрах при подсчёте доступности и в частичном
// уникальном индексе на (barbershop_id, booking_date, start_time).
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, освобождающих слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
