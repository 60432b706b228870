package domain

import (
	"time"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

// Barbershop represents a bookable provider: the partition key for slot exclusivity
type Barbershop struct {
	ID       int64
	Name     string
	Address  string
	ImageURL string
	Phones   []string // Упорядоченный список контактных телефонов

	// Slot catalog configuration
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Catalog returns the slot catalog configured for the barbershop
func (b *Barbershop) Catalog() SlotCatalog {
	return SlotCatalog{
		OpenTime:            b.OpenTime,
		CloseTime:           b.CloseTime,
		SlotDurationMinutes: b.SlotDurationMinutes,
	}
}

// BarberService represents a service offered by exactly one barbershop.
// Price is kept in integer minor currency units; bookings denormalize it
// at creation so later edits never change what was already sold.
type BarberService struct {
	ID           int64
	BarbershopID int64
	Name         string
	Description  string
	PriceCents   int64
	ImageURL     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
