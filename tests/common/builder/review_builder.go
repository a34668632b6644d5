//go:build unit || e2e

package builder

import (
	"time"

	dombooking "bookit-api/internal/domain/booking"
	domreview "bookit-api/internal/domain/review"
	reqdto "bookit-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	UserID        uuid.UUID
	ServiceID     uuid.UUID
	BookingStatus dombooking.Status
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:            uuid.New(),
		BookingID:     uuid.New(),
		UserID:        uuid.New(),
		ServiceID:     uuid.New(),
		BookingStatus: dombooking.StatusCompleted,
		Rating:        5,
		Comment:       "Excellent service!",
		CreatedAt:     time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods

// BuildDomain runs the full creation path, including the completed-booking
// gate, against a booking assembled from the builder fields.
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}

	b := NewBookingBuilder().
		WithID(r.BookingID).
		WithUserID(r.UserID).
		WithServiceID(r.ServiceID).
		WithStatus(r.BookingStatus).
		BuildReconstructed()

	return domreview.NewReview(r.CreatedAt, b, r.UserID, rating, comment)
}

func (r *ReviewBuilder) BuildReconstructed() *domreview.Review {
	return domreview.ReconstructReview(
		r.ID,
		r.BookingID,
		r.UserID,
		r.ServiceID,
		domreview.Rating(r.Rating),
		domreview.Comment(r.Comment),
		r.CreatedAt,
	)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithServiceID(serviceID uuid.UUID) *ReviewBuilder {
	r.ServiceID = serviceID
	return r
}

func (r *ReviewBuilder) WithBookingStatus(status dombooking.Status) *ReviewBuilder {
	r.BookingStatus = status
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}
