package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookit-api/internal/domain/booking"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
	"bookit-api/internal/usecase/shared"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, user_id, service_id, start_time, end_time, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Create relies on the bookings exclusion constraint as the final arbiter of
// overlap races; a violation surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	_, err := dbtx.Exec(ctx, createBookingSQL,
		b.ID(),
		b.UserID(),
		b.ServiceID(),
		b.StartTime(),
		b.EndTime(),
		b.Status().String(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const findBookingByIDSQL = `
SELECT id, user_id, service_id, start_time, end_time, status, created_at
FROM bookings
WHERE id = $1
`

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, findBookingByIDSQL, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, dbtx db.DBTX, filter shared.BookingFilter) ([]*booking.Booking, error) {
	query := `
SELECT id, user_id, service_id, start_time, end_time, status, created_at
FROM bookings`

	var (
		conds []string
		args  []any
	)

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, filter.Status.String())
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("start_time <= $%d", len(args)))
	}

	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY start_time"

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return bookings, nil
}

const hasOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE service_id = $1
      AND status IN ('pending', 'confirmed')
      AND start_time < $3
      AND end_time > $2
      AND ($4::uuid IS NULL OR id <> $4)
)
`

// HasOverlap runs the half-open interval test against slot-blocking bookings
// of the same service. excludeID lets reschedules ignore the booking being
// moved.
func (r *BookingRepository) HasOverlap(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	row := dbtx.QueryRow(ctx, hasOverlapSQL, serviceID, slot.Start(), slot.End(), excludeID)
	if err := row.Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

const updateBookingSQL = `
UPDATE bookings
SET start_time = $2, end_time = $3, status = $4
WHERE id = $1
`

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx, updateBookingSQL,
		b.ID(),
		b.StartTime(),
		b.EndTime(),
		b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
	}
	return nil
}

const deleteBookingSQL = `
DELETE FROM bookings
WHERE id = $1
`

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id        uuid.UUID
		userID    uuid.UUID
		serviceID uuid.UUID
		startTime time.Time
		endTime   time.Time
		statusStr string
		createdAt time.Time
	)

	if err := row.Scan(&id, &userID, &serviceID, &startTime, &endTime, &statusStr, &createdAt); err != nil {
		return nil, err
	}

	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(id, userID, serviceID, slot, status, createdAt), nil
}
