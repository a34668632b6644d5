package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"bookit-api/internal/domain/booking"
	"bookit-api/internal/domain/user"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
	"bookit-api/internal/pkg/clock"
	"bookit-api/internal/pkg/errs"
	"bookit-api/internal/usecase/shared"
)

// UpdateBookingInput carries a reschedule and/or a status change. When both
// are present the reschedule is applied first, so the transition is judged
// against the new slot. Rescheduling is an owner action; a start time from a
// non-owner admin is ignored.
type UpdateBookingInput struct {
	StartTime *time.Time
	Status    *string
}

type BookingUseCase interface {
	Create(ctx context.Context, actorID uuid.UUID, serviceID uuid.UUID, startTime time.Time) (*booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) (*booking.Booking, error)
	List(ctx context.Context, actorID uuid.UUID, role user.Role, filter shared.BookingFilter) ([]*booking.Booking, error)
	Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role, input UpdateBookingInput) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
}

type bookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	bookingRepo shared.BookingRepository
	clock       clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingRepo shared.BookingRepository, clock clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		uow:         uow,
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

// Create reserves a slot if it is free. The overlap pre-check gives a clean
// conflict error; the exclusion constraint settles races the check cannot
// see.
func (b *bookingUseCaseImpl) Create(ctx context.Context, actorID uuid.UUID, serviceID uuid.UUID, startTime time.Time) (*booking.Booking, error) {
	var created *booking.Booking
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Services().FindByID(ctx, tx.DB(), serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrServiceNotFound)
			}
			return err
		}
		if !svc.IsActive() {
			return errs.ErrServiceInactive
		}

		newBooking, err := booking.NewBooking(b.clock.Now(), actorID, svc, startTime)
		if err != nil {
			return err
		}

		overlaps, err := tx.Bookings().HasOverlap(ctx, tx.DB(), serviceID, newBooking.Slot(), nil)
		if err != nil {
			return err
		}
		if overlaps {
			return errs.ErrBookingConflict
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), newBooking); err != nil {
			return err
		}

		created = newBooking
		return nil
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	return created, nil
}

func (b *bookingUseCaseImpl) Get(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) (*booking.Booking, error) {
	var found *booking.Booking
	err := b.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		bk, err := b.bookingRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			return err
		}
		found = bk
		return nil
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	if !canAccessBooking(found, actorID, role) {
		return nil, errs.ErrForbidden
	}

	return found, nil
}

// List returns the actor's own bookings; admins see all bookings and may
// filter by any user.
func (b *bookingUseCaseImpl) List(ctx context.Context, actorID uuid.UUID, role user.Role, filter shared.BookingFilter) ([]*booking.Booking, error) {
	if !role.IsAdmin() {
		filter.UserID = &actorID
	}

	var bookings []*booking.Booking
	err := b.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		list, err := b.bookingRepo.List(ctx, dbtx, filter)
		if err != nil {
			return err
		}
		bookings = list
		return nil
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	return bookings, nil
}

func (b *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role, input UpdateBookingInput) (*booking.Booking, error) {
	var updated *booking.Booking
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		if !canAccessBooking(current, actorID, role) {
			return errs.ErrForbidden
		}
		isOwner := current.IsOwnedBy(actorID)

		// Rescheduling is an owner action; a start time sent by a
		// non-owner admin is ignored.
		if input.StartTime != nil && isOwner {
			svc, err := tx.Services().FindByID(ctx, tx.DB(), current.ServiceID())
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrServiceNotFound)
				}
				return err
			}

			if err := current.Reschedule(*input.StartTime, svc.Duration()); err != nil {
				return err
			}

			excludeID := current.ID()
			overlaps, err := tx.Bookings().HasOverlap(ctx, tx.DB(), current.ServiceID(), current.Slot(), &excludeID)
			if err != nil {
				return err
			}
			if overlaps {
				return errs.ErrBookingConflict
			}
		}

		if input.Status != nil {
			to, err := booking.NewStatus(*input.Status)
			if err != nil {
				return err
			}
			if err := current.Transition(to, isOwner, role.IsAdmin()); err != nil {
				return err
			}
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), current); err != nil {
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	return updated, nil
}

func (b *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		if err := current.CanBeDeletedBy(b.clock.Now(), actorID, role.IsAdmin()); err != nil {
			return err
		}

		return tx.Bookings().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return mapBookingErr(err)
	}

	return nil
}

// mapBookingErr translates domain and repository failures into the shared
// sentinels handlers switch on.
func mapBookingErr(err error) error {
	switch {
	case errors.Is(err, errs.ErrServiceInactive),
		errors.Is(err, errs.ErrServiceNotFound),
		errors.Is(err, errs.ErrBookingConflict),
		errors.Is(err, errs.ErrForbidden):
		return err
	case errors.Is(err, booking.ErrStartNotFuture):
		return errs.Mark(err, errs.ErrInvalidStartTime)
	case errors.Is(err, booking.ErrUnknownStatus),
		errors.Is(err, booking.ErrTransitionInvalid),
		errors.Is(err, booking.ErrRescheduleNotAllowed):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, booking.ErrTransitionForbidden),
		errors.Is(err, booking.ErrDeleteNotPermitted):
		return errs.Mark(err, errs.ErrForbidden)
	case errors.Is(err, booking.ErrDeleteAfterStart):
		return errs.Mark(err, errs.ErrBookingStarted)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrBookingConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrServiceNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
