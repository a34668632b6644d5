package response

import (
	"time"

	"bookit-api/internal/domain/booking"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ServiceID string    `json:"service_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID().String(),
		UserID:    b.UserID().String(),
		ServiceID: b.ServiceID().String(),
		StartTime: b.StartTime(),
		EndTime:   b.EndTime(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
	}
}

func FromBookings(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
