package models

import "github.com/m04kA/Barber-BookingService/internal/domain"

// BarbershopResponse ответ с данными барбершопа
type BarbershopResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	ImageURL string   `json:"imageUrl"`
	Phones   []string `json:"phones"`

	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID           int64  `json:"id"`
	BarbershopID int64  `json:"barbershopId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"priceCents"`
	ImageURL     string `json:"imageUrl"`
}

// BarbershopDetailsResponse барбершоп вместе с его услугами
type BarbershopDetailsResponse struct {
	BarbershopResponse
	Services []ServiceResponse `json:"services"`
}

// BarbershopListResponse ответ со списком барбершопов
type BarbershopListResponse struct {
	Barbershops []BarbershopResponse `json:"barbershops"`
}

// FromDomainBarbershop конвертирует domain модель в DTO
func FromDomainBarbershop(b *domain.Barbershop) *BarbershopResponse {
	if b == nil {
		return nil
	}
	return &BarbershopResponse{
		ID:                  b.ID,
		Name:                b.Name,
		Address:             b.Address,
		ImageURL:            b.ImageURL,
		Phones:              b.Phones,
		OpenTime:            b.OpenTime.String(),
		CloseTime:           b.CloseTime.String(),
		SlotDurationMinutes: b.SlotDurationMinutes,
	}
}

// FromDomainService конвертирует domain модель услуги в DTO
func FromDomainService(s *domain.BarberService) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:           s.ID,
		BarbershopID: s.BarbershopID,
		Name:         s.Name,
		Description:  s.Description,
		PriceCents:   s.PriceCents,
		ImageURL:     s.ImageURL,
	}
}

// FromDomainBarbershopList конвертирует список domain моделей в DTO
func FromDomainBarbershopList(shops []*domain.Barbershop) *BarbershopListResponse {
	resp := &BarbershopListResponse{
		Barbershops: make([]BarbershopResponse, 0, len(shops)),
	}
	for _, shop := range shops {
		if dto := FromDomainBarbershop(shop); dto != nil {
			resp.Barbershops = append(resp.Barbershops, *dto)
		}
	}
	return resp
}
