package barbershop

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Barber-BookingService/internal/domain"
	"github.com/m04kA/Barber-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Barber-BookingService/pkg/psqlbuilder"
)

var barbershopColumns = []string{
	"id",
	"name",
	"address",
	"image_url",
	"phones",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"created_at",
	"updated_at",
}

var serviceColumns = []string{
	"id",
	"barbershop_id",
	"name",
	"description",
	"price_cents",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с барбершопами и их услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барбершопов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает барбершоп по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barbershop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barbershopColumns...).
		From("barbershops").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	shop, err := scanBarbershop(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBarbershopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barbershop: %w", ErrScanRow, err)
	}

	return shop, nil
}

// List получает все барбершопы, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Barbershop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barbershopColumns...).
		From("barbershops").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	shops := make([]*domain.Barbershop, 0)
	for rows.Next() {
		shop, err := scanBarbershop(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return shops, nil
}

// GetService получает услугу по ID с проверкой принадлежности барбершопу
func (r *Repository) GetService(ctx context.Context, barbershopID, serviceID int64) (*domain.BarberService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("barbershop_services").
		Where(squirrel.Eq{"id": serviceID, "barbershop_id": barbershopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %w", ErrScanRow, err)
	}

	return service, nil
}

// ListServices получает все услуги барбершопа
func (r *Repository) ListServices(ctx context.Context, barbershopID int64) ([]*domain.BarberService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("barbershop_services").
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.BarberService, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %w", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

// rowScanner интерфейс, общий для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBarbershop сканирует одну строку в модель барбершопа
func scanBarbershop(row rowScanner) (*domain.Barbershop, error) {
	var shop domain.Barbershop
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&shop.ImageURL,
		pq.Array(&shop.Phones),
		&shop.OpenTime,
		&shop.CloseTime,
		&shop.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time

	return &shop, nil
}

// scanService сканирует одну строку в модель услуги
func scanService(row rowScanner) (*domain.BarberService, error) {
	var service domain.BarberService
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.BarbershopID,
		&service.Name,
		&service.Description,
		&service.PriceCents,
		&service.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}
