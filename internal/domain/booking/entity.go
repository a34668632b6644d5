package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"bookit-api/internal/domain/service"
)

var (
	ErrUnknownStatus        = errors.New("unknown booking status")
	ErrStartNotFuture       = errors.New("start time must be in the future")
	ErrBookingNotActive     = errors.New("booking is no longer active")
	ErrTransitionInvalid    = errors.New("invalid status transition")
	ErrTransitionForbidden  = errors.New("status transition not permitted for this actor")
	ErrDeleteAfterStart     = errors.New("booking has already started")
	ErrDeleteNotPermitted   = errors.New("booking deletion not permitted for this actor")
	ErrRescheduleNotAllowed = errors.New("only pending or confirmed bookings can be rescheduled")
)

type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	serviceID uuid.UUID
	slot      TimeSlot
	status    Status
	createdAt time.Time
}

// NewBooking creates a pending booking whose slot is derived from the service
// duration. The start time must be strictly after now.
func NewBooking(now time.Time, userID uuid.UUID, svc *service.Service, start time.Time) (*Booking, error) {
	if !start.After(now) {
		return nil, ErrStartNotFuture
	}

	slot, err := SlotFromStart(start, svc.Duration())
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		serviceID: svc.ID(),
		slot:      slot,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	userID uuid.UUID,
	serviceID uuid.UUID,
	slot TimeSlot,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		serviceID: serviceID,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID {
	return b.id
}

func (b *Booking) UserID() uuid.UUID {
	return b.userID
}

func (b *Booking) ServiceID() uuid.UUID {
	return b.serviceID
}

func (b *Booking) Slot() TimeSlot {
	return b.slot
}

func (b *Booking) StartTime() time.Time {
	return b.slot.Start()
}

func (b *Booking) EndTime() time.Time {
	return b.slot.End()
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// Reschedule moves the booking to a new slot sized by duration, so a catalog
// duration change applies to the moved slot. Terminal bookings cannot be
// moved. Unlike creation, the new start is not required to be in the future.
func (b *Booking) Reschedule(newStart time.Time, duration time.Duration) error {
	if b.status.IsTerminal() {
		return ErrRescheduleNotAllowed
	}

	slot, err := SlotFromStart(newStart, duration)
	if err != nil {
		return err
	}
	b.slot = slot

	return nil
}

// CanBeDeletedBy reports whether the actor may hard-delete the booking.
// Admins may always delete; owners only before the slot starts.
func (b *Booking) CanBeDeletedBy(now time.Time, actorID uuid.UUID, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	if !b.IsOwnedBy(actorID) {
		return ErrDeleteNotPermitted
	}
	if !now.Before(b.slot.Start()) {
		return ErrDeleteAfterStart
	}

	return nil
}
