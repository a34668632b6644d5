package response

import (
	"time"

	"bookit-api/internal/domain/review"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	ServiceID string    `json:"service_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReview(rev *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:        rev.ID().String(),
		BookingID: rev.BookingID().String(),
		UserID:    rev.UserID().String(),
		ServiceID: rev.ServiceID().String(),
		Rating:    rev.Rating().Int(),
		Comment:   rev.Comment().String(),
		CreatedAt: rev.CreatedAt(),
	}
}

func FromReviews(reviews []*review.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, FromReview(rev))
	}
	return out
}
