package barbershops

import (
	"context"
	"errors"
	"fmt"

	barbershopRepo "github.com/m04kA/Barber-BookingService/internal/infra/storage/barbershop"
	"github.com/m04kA/Barber-BookingService/internal/service/barbershops/models"
)

// Service сервис каталога барбершопов
type Service struct {
	barbershopRepo BarbershopRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса барбершопов
func NewService(barbershopRepo BarbershopRepository, logger Logger) *Service {
	return &Service{
		barbershopRepo: barbershopRepo,
		logger:         logger,
	}
}

// List получает список всех барбершопов
func (s *Service) List(ctx context.Context) (*models.BarbershopListResponse, error) {
	shops, err := s.barbershopRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d barbershops", len(shops))
	return models.FromDomainBarbershopList(shops), nil
}

// GetByID получает барбершоп вместе с его услугами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BarbershopDetailsResponse, error) {
	shop, err := s.barbershopRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barbershopRepo.ErrBarbershopNotFound) {
			s.logger.Warn("GetByID: barbershop id=%d not found", id)
			return nil, ErrBarbershopNotFound
		}
		s.logger.Error("GetByID: repository error for barbershop id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	services, err := s.barbershopRepo.ListServices(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list services for barbershop id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list services: %v", ErrInternal, err)
	}

	resp := &models.BarbershopDetailsResponse{
		BarbershopResponse: *models.FromDomainBarbershop(shop),
		Services:           make([]models.ServiceResponse, 0, len(services)),
	}
	for _, service := range services {
		if dto := models.FromDomainService(service); dto != nil {
			resp.Services = append(resp.Services, *dto)
		}
	}

	return resp, nil
}
