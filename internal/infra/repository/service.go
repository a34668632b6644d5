package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"bookit-api/internal/domain/service"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
	"bookit-api/internal/pkg/pgconv"
	"bookit-api/internal/usecase/shared"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

const createServiceSQL = `
INSERT INTO services (id, title, description, price, duration_minutes, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *ServiceRepository) Create(ctx context.Context, dbtx db.DBTX, svc *service.Service) error {
	_, err := dbtx.Exec(ctx, createServiceSQL,
		svc.ID(),
		svc.Title(),
		svc.Description(),
		pgconv.NumericFromFloat64(svc.Price()),
		svc.DurationMinutes(),
		svc.IsActive(),
		svc.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

const findServiceByIDSQL = `
SELECT id, title, description, price, duration_minutes, is_active, created_at
FROM services
WHERE id = $1
`

func (r *ServiceRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*service.Service, error) {
	row := dbtx.QueryRow(ctx, findServiceByIDSQL, id)
	svc, err := scanService(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return svc, nil
}

// List builds the WHERE clause dynamically from the filter. Title and
// description matching is case-insensitive.
func (r *ServiceRepository) List(ctx context.Context, dbtx db.DBTX, filter shared.ServiceFilter) ([]*service.Service, error) {
	query := `
SELECT id, title, description, price, duration_minutes, is_active, created_at
FROM services`

	var (
		conds []string
		args  []any
	)

	if filter.Query != nil {
		args = append(args, "%"+*filter.Query+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.PriceMin != nil {
		args = append(args, pgconv.NumericFromFloat64(*filter.PriceMin))
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.PriceMax != nil {
		args = append(args, pgconv.NumericFromFloat64(*filter.PriceMax))
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY created_at DESC"

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var services []*service.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}

	return services, nil
}

const updateServiceSQL = `
UPDATE services
SET title = $2, description = $3, price = $4, duration_minutes = $5, is_active = $6
WHERE id = $1
`

func (r *ServiceRepository) Update(ctx context.Context, dbtx db.DBTX, svc *service.Service) error {
	tag, err := dbtx.Exec(ctx, updateServiceSQL,
		svc.ID(),
		svc.Title(),
		svc.Description(),
		pgconv.NumericFromFloat64(svc.Price()),
		svc.DurationMinutes(),
		svc.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", pgx.ErrNoRows)
	}
	return nil
}

const deleteServiceSQL = `
DELETE FROM services
WHERE id = $1
`

func (r *ServiceRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteServiceSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", pgx.ErrNoRows)
	}
	return nil
}

func scanService(row pgx.Row) (*service.Service, error) {
	var (
		id              uuid.UUID
		title           string
		description     string
		price           pgtype.Numeric
		durationMinutes int
		isActive        bool
		createdAt       time.Time
	)

	if err := row.Scan(&id, &title, &description, &price, &durationMinutes, &isActive, &createdAt); err != nil {
		return nil, err
	}

	priceValue, err := pgconv.Float64FromNumeric(price)
	if err != nil {
		return nil, err
	}

	return service.ReconstructService(id, title, description, priceValue, durationMinutes, isActive, createdAt), nil
}
