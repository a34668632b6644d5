package shared

import (
	"time"

	"bookit-api/internal/domain/booking"

	"github.com/google/uuid"
)

// ServiceFilter narrows catalog listings. Active is tri-state: nil lists
// every service, true/false match is_active exactly.
type ServiceFilter struct {
	Query    *string
	PriceMin *float64
	PriceMax *float64
	Active   *bool
}

// BookingFilter narrows booking listings. UserID is set by the usecase for
// non-admin callers so owners only ever see their own bookings.
type BookingFilter struct {
	UserID *uuid.UUID
	Status *booking.Status
	From   *time.Time
	To     *time.Time
}
