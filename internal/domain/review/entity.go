package review

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"bookit-api/internal/domain/booking"
)

var ErrBookingNotCompleted = errors.New("only completed bookings can be reviewed")

type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	serviceID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

// NewReview creates a review for a completed booking owned by the author.
// Ownership is the caller's concern; the completion gate lives here.
func NewReview(now time.Time, b *booking.Booking, authorID uuid.UUID, rating Rating, comment Comment) (*Review, error) {
	if b.Status() != booking.StatusCompleted {
		return nil, ErrBookingNotCompleted
	}

	return &Review{
		id:        uuid.New(),
		bookingID: b.ID(),
		userID:    authorID,
		serviceID: b.ServiceID(),
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}, nil
}

func ReconstructReview(
	id uuid.UUID,
	bookingID uuid.UUID,
	userID uuid.UUID,
	serviceID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt time.Time,
) *Review {
	return &Review{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		serviceID: serviceID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID {
	return r.id
}

func (r *Review) BookingID() uuid.UUID {
	return r.bookingID
}

func (r *Review) UserID() uuid.UUID {
	return r.userID
}

func (r *Review) ServiceID() uuid.UUID {
	return r.serviceID
}

func (r *Review) Rating() Rating {
	return r.rating
}

func (r *Review) Comment() Comment {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Update replaces the rating and comment. Authorization is enforced by the
// caller.
func (r *Review) Update(rating Rating, comment Comment) {
	r.rating = rating
	r.comment = comment
}
