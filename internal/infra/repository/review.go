package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookit-api/internal/domain/review"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, booking_id, user_id, service_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Create relies on the unique index on booking_id; a duplicate review
// surfaces as KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) error {
	_, err := dbtx.Exec(ctx, createReviewSQL,
		rev.ID(),
		rev.BookingID(),
		rev.UserID(),
		rev.ServiceID(),
		rev.Rating().Int(),
		rev.Comment().String(),
		rev.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

const findReviewByIDSQL = `
SELECT id, booking_id, user_id, service_id, rating, comment, created_at
FROM reviews
WHERE id = $1
`

func (r *ReviewRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*review.Review, error) {
	row := dbtx.QueryRow(ctx, findReviewByIDSQL, id)
	rev, err := scanReview(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return rev, nil
}

const listReviewsByServiceSQL = `
SELECT id, booking_id, user_id, service_id, rating, comment, created_at
FROM reviews
WHERE service_id = $1
ORDER BY created_at DESC
`

func (r *ReviewRepository) ListByService(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID) ([]*review.Review, error) {
	rows, err := dbtx.Query(ctx, listReviewsByServiceSQL, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var reviews []*review.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return reviews, nil
}

const updateReviewSQL = `
UPDATE reviews
SET rating = $2, comment = $3
WHERE id = $1
`

func (r *ReviewRepository) Update(ctx context.Context, dbtx db.DBTX, rev *review.Review) error {
	tag, err := dbtx.Exec(ctx, updateReviewSQL,
		rev.ID(),
		rev.Rating().Int(),
		rev.Comment().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", pgx.ErrNoRows)
	}
	return nil
}

const deleteReviewSQL = `
DELETE FROM reviews
WHERE id = $1
`

func (r *ReviewRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteReviewSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", pgx.ErrNoRows)
	}
	return nil
}

func scanReview(row pgx.Row) (*review.Review, error) {
	var (
		id        uuid.UUID
		bookingID uuid.UUID
		userID    uuid.UUID
		serviceID uuid.UUID
		rating    int
		comment   string
		createdAt time.Time
	)

	if err := row.Scan(&id, &bookingID, &userID, &serviceID, &rating, &comment, &createdAt); err != nil {
		return nil, err
	}

	return review.ReconstructReview(
		id,
		bookingID,
		userID,
		serviceID,
		review.Rating(rating),
		review.Comment(comment),
		createdAt,
	), nil
}
