//go:build unit || e2e

package builder

import (
	"time"

	dombooking "bookit-api/internal/domain/booking"
	reqdto "bookit-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ServiceID       uuid.UUID
	StartTime       time.Time
	DurationMinutes int
	Status          dombooking.Status
	Now             time.Time
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ServiceID:       uuid.New(),
		StartTime:       now.Add(24 * time.Hour),
		DurationMinutes: 60,
		Status:          dombooking.StatusPending,
		Now:             now,
		CreatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	svc := NewServiceBuilder().
		WithID(b.ServiceID).
		WithDurationMinutes(b.DurationMinutes).
		BuildReconstructed()
	return dombooking.NewBooking(b.Now, b.UserID, svc, b.StartTime)
}

// BuildReconstructed bypasses creation rules so tests can build bookings in
// any status, including ones that already started.
func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	slot, err := dombooking.NewTimeSlot(b.StartTime, b.StartTime.Add(time.Duration(b.DurationMinutes)*time.Minute))
	if err != nil {
		panic(err)
	}
	return dombooking.ReconstructBooking(b.ID, b.UserID, b.ServiceID, slot, b.Status, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID: b.ServiceID.String(),
		StartTime: b.StartTime,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	startTime := b.StartTime
	status := b.Status.String()
	return reqdto.UpdateBookingRequest{
		StartTime: &startTime,
		Status:    &status,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithServiceID(serviceID uuid.UUID) *BookingBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *BookingBuilder) WithStartTime(startTime time.Time) *BookingBuilder {
	b.StartTime = startTime
	return b
}

func (b *BookingBuilder) WithDurationMinutes(minutes int) *BookingBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
