package models

import (
	"time"

	"github.com/m04kA/Barber-BookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// BookingResponse ответ с данными бронирования.
// Status - производный статус на момент чтения: подтверждённое бронирование
// с прошедшим временем начала отдаётся как finished.
type BookingResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	BarbershopID  int64  `json:"barbershopId"`
	ServiceID     int64  `json:"serviceId"`
	BookingDate   string `json:"bookingDate"` // "2025-10-15"
	StartTime     string `json:"startTime"`   // "10:00"
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`

	// Денормализованные данные
	ServiceName       string `json:"serviceName"`
	ServicePriceCents int64  `json:"servicePriceCents"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GroupedBookingsResponse бронирования пользователя, сгруппированные
// по производному статусу для отображения
type GroupedBookingsResponse struct {
	Pending   []BookingResponse `json:"pending"`
	Confirmed []BookingResponse `json:"confirmed"`
	Finished  []BookingResponse `json:"finished"`
	Cancelled []BookingResponse `json:"cancelled"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO с производным статусом
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		UserID:            b.UserID,
		BarbershopID:      b.BarbershopID,
		ServiceID:         b.ServiceID,
		BookingDate:       b.BookingDate.Format(domain.DateFormat),
		StartTime:         b.StartTime.String(),
		Status:            string(b.DerivedStatus(now)),
		PaymentMethod:     string(b.PaymentMethod),
		ServiceName:       b.ServiceName,
		ServicePriceCents: b.ServicePriceCents,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// GroupByDerivedStatus раскладывает бронирования по производным статусам
func GroupByDerivedStatus(bookings []*domain.Booking, now time.Time) *GroupedBookingsResponse {
	resp := &GroupedBookingsResponse{
		Pending:   make([]BookingResponse, 0),
		Confirmed: make([]BookingResponse, 0),
		Finished:  make([]BookingResponse, 0),
		Cancelled: make([]BookingResponse, 0),
	}

	for _, booking := range bookings {
		dto := FromDomainBooking(booking, now)
		if dto == nil {
			continue
		}

		switch booking.DerivedStatus(now) {
		case domain.StatusPending:
			resp.Pending = append(resp.Pending, *dto)
		case domain.StatusConfirmed:
			resp.Confirmed = append(resp.Confirmed, *dto)
		case domain.StatusFinished:
			resp.Finished = append(resp.Finished, *dto)
		case domain.StatusCancelled:
			resp.Cancelled = append(resp.Cancelled, *dto)
		}
	}

	return resp
}
