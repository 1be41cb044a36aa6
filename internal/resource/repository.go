package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	// ListByLocation returns every resource at a location ordered by display
	// number, without pagination. Used by the selection and conflict flows.
	ListByLocation(ctx context.Context, locationID string) ([]*Resource, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const selectColumns = "id, location_id, number, name, features, active, created_at"

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM public.resources
		WHERE id = $1
	`, selectColumns)

	var res Resource
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.LocationID, &res.Number, &res.Name, &res.Features, &res.Active, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "location_id", "number", "name", "features", "active", "created_at",
		"count(*) OVER() as total_count",
	).
		From("public.resources")

	if filter.LocationID != "" {
		query = query.Where(squirrel.Eq{"location_id": filter.LocationID})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	query = query.OrderBy("number ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list resources query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources failed: %w", err)
	}
	defer rows.Close()

	var resources []*Resource
	var total int
	for rows.Next() {
		var res Resource
		if err := rows.Scan(
			&res.ID, &res.LocationID, &res.Number, &res.Name, &res.Features, &res.Active, &res.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan resource failed: %w", err)
		}
		resources = append(resources, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate resources failed: %w", err)
	}

	return resources, total, nil
}

func (r *pgxRepository) ListByLocation(ctx context.Context, locationID string) ([]*Resource, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM public.resources
		WHERE location_id = $1
		ORDER BY number ASC
	`, selectColumns)

	rows, err := r.pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list resources by location failed: %w", err)
	}
	defer rows.Close()

	var resources []*Resource
	for rows.Next() {
		var res Resource
		if err := rows.Scan(
			&res.ID, &res.LocationID, &res.Number, &res.Name, &res.Features, &res.Active, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan resource failed: %w", err)
		}
		resources = append(resources, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources failed: %w", err)
	}

	return resources, nil
}
