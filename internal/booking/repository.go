package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the booking and its resource links in one transaction.
	// The bookings_no_overlap exclusion constraint is the system of record
	// for races; a violation maps to ErrTimeConflict.
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)

	// Snapshot returns every non-cancelled booking touching any of the given
	// resources that intersects the window, ordered by start time. Each call
	// sees a point-in-time view; availability math never re-reads.
	Snapshot(ctx context.Context, resourceIDs []string, start, end time.Time) ([]*Booking, error)

	// HistoryForCustomer returns the customer's most recent bookings at a
	// location (newest first), for favorites ranking and one-click rebook.
	HistoryForCustomer(ctx context.Context, customerRef, locationID string, limit int) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("location_id", "customer_ref", "start_time", "end_time", "status", "payment_status").
		Values(b.LocationID, b.CustomerRef, b.StartTime, b.EndTime, b.Status, b.PaymentStatus).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	link := psql.Insert("public.booking_resources").
		Columns("booking_id", "resource_id", "booked_range")
	for _, resID := range b.ResourceIDs {
		link = link.Values(b.ID, resID, squirrel.Expr("tstzrange(?, ?, '[)')", b.StartTime, b.EndTime))
	}
	query, args, err = link.ToSql()
	if err != nil {
		return fmt.Errorf("build booking resources query failed: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if isOverlapViolation(err) {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking resources failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isOverlapViolation(err) {
			return ErrTimeConflict
		}
		return fmt.Errorf("commit create booking failed: %w", err)
	}
	return nil
}

// isOverlapViolation detects the exclusion constraint guarding
// per-resource booking overlap.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation
}

const bookingColumns = `
	b.id, b.location_id, b.customer_ref, b.start_time, b.end_time,
	b.status, b.payment_status, b.created_at, b.updated_at,
	array_agg(br.resource_id ORDER BY br.resource_id) as resource_ids
`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM public.bookings b
		JOIN public.booking_resources br ON br.booking_id = b.id
		WHERE b.id = $1
		GROUP BY b.id
	`, bookingColumns)

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.location_id", "b.customer_ref", "b.start_time", "b.end_time",
		"b.status", "b.payment_status", "b.created_at", "b.updated_at",
		"array_agg(br.resource_id ORDER BY br.resource_id) as resource_ids",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.booking_resources br ON br.booking_id = b.id").
		GroupBy("b.id")

	if filter.CustomerRef != "" {
		query = query.Where(squirrel.Eq{"b.customer_ref": filter.CustomerRef})
	}
	if filter.LocationID != "" {
		query = query.Where(squirrel.Eq{"b.location_id": filter.LocationID})
	}
	if filter.ResourceID != "" {
		query = query.Where(squirrel.Expr(
			"b.id IN (SELECT booking_id FROM public.booking_resources WHERE resource_id = ?)",
			filter.ResourceID,
		))
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.StartTime != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_time": filter.StartTime})
	}
	if filter.EndTime != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_time": filter.EndTime})
	}

	query = query.OrderBy("b.start_time DESC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.LocationID, &b.CustomerRef, &b.StartTime, &b.EndTime,
			&b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
			&b.ResourceIDs, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	const query = `
		UPDATE public.bookings
		SET status = $2, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *pgxRepository) Snapshot(ctx context.Context, resourceIDs []string, start, end time.Time) ([]*Booking, error) {
	if len(resourceIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM public.bookings b
		JOIN public.booking_resources br ON br.booking_id = b.id
		WHERE br.resource_id = ANY($1)
		  AND b.status != 'cancelled'
		  AND b.start_time < $3
		  AND b.end_time > $2
		GROUP BY b.id
		ORDER BY b.start_time ASC
	`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, resourceIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("snapshot bookings failed: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *pgxRepository) HistoryForCustomer(ctx context.Context, customerRef, locationID string, limit int) ([]*Booking, error) {
	if limit < 1 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM public.bookings b
		JOIN public.booking_resources br ON br.booking_id = b.id
		WHERE b.customer_ref = $1
		  AND b.location_id = $2
		  AND b.status != 'cancelled'
		GROUP BY b.id
		ORDER BY b.start_time DESC
		LIMIT $3
	`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, customerRef, locationID, limit)
	if err != nil {
		return nil, fmt.Errorf("booking history failed: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*Booking, error) {
	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.LocationID, &b.CustomerRef, &b.StartTime, &b.EndTime,
		&b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
		&b.ResourceIDs,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
