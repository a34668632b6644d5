//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"bookit-api/internal/domain/booking"
	"bookit-api/internal/domain/service"
	"bookit-api/internal/domain/user"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
	"bookit-api/internal/pkg/clock"
	"bookit-api/internal/pkg/errs"
	"bookit-api/internal/usecase"
	"bookit-api/internal/usecase/shared"
	"bookit-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory stand-in for the repository layer so the use case
// rules can be exercised without a database. It reproduces the repository
// error contract: missing rows surface as KindNotFound.
type fakeStore struct {
	services map[uuid.UUID]*service.Service
	bookings map[uuid.UUID]*booking.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		services: make(map[uuid.UUID]*service.Service),
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

func (s *fakeStore) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	s.bookings[b.ID()] = b
	return nil
}

func (s *fakeStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return b, nil
}

func (s *fakeStore) List(ctx context.Context, dbtx db.DBTX, filter shared.BookingFilter) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if filter.UserID != nil && b.UserID() != *filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status() != *filter.Status {
			continue
		}
		if filter.From != nil && b.StartTime().Before(*filter.From) {
			continue
		}
		if filter.To != nil && b.StartTime().After(*filter.To) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeStore) HasOverlap(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	for _, b := range s.bookings {
		if b.ServiceID() != serviceID || !b.Status().BlocksSlot() {
			continue
		}
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		if b.Slot().Overlaps(slot) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	if _, ok := s.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	s.bookings[b.ID()] = b
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	if _, ok := s.bookings[id]; !ok {
		return notFound("booking not found")
	}
	delete(s.bookings, id)
	return nil
}

// fakeServices implements shared.ServiceRepository over the same store.
type fakeServices struct{ store *fakeStore }

func (s fakeServices) Create(ctx context.Context, dbtx db.DBTX, svc *service.Service) error {
	s.store.services[svc.ID()] = svc
	return nil
}

func (s fakeServices) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*service.Service, error) {
	svc, ok := s.store.services[id]
	if !ok {
		return nil, notFound("service not found")
	}
	return svc, nil
}

func (s fakeServices) List(ctx context.Context, dbtx db.DBTX, filter shared.ServiceFilter) ([]*service.Service, error) {
	var out []*service.Service
	for _, svc := range s.store.services {
		out = append(out, svc)
	}
	return out, nil
}

func (s fakeServices) Update(ctx context.Context, dbtx db.DBTX, svc *service.Service) error {
	s.store.services[svc.ID()] = svc
	return nil
}

func (s fakeServices) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	delete(s.store.services, id)
	return nil
}

type fakeTx struct{ store *fakeStore }

func (t fakeTx) Users() shared.UserRepository       { return nil }
func (t fakeTx) Services() shared.ServiceRepository { return fakeServices{store: t.store} }
func (t fakeTx) Bookings() shared.BookingRepository { return t.store }
func (t fakeTx) Reviews() shared.ReviewRepository   { return nil }
func (t fakeTx) DB() db.DBTX                        { return nil }

type fakeUoW struct{ store *fakeStore }

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{store: u.store})
}

func (u fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func newBookingFixture(t *testing.T) (usecase.BookingUseCase, *fakeStore, *clock.MockClock, time.Time) {
	t.Helper()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := newFakeStore()
	mockClock := clock.NewMockClock(now)
	uc := usecase.NewBookingUseCase(fakeUoW{store: store}, store, mockClock)
	return uc, store, mockClock, now
}

func seedService(t *testing.T, store *fakeStore, durationMinutes int, isActive bool) *service.Service {
	t.Helper()

	svc := builder.NewServiceBuilder().
		WithDurationMinutes(durationMinutes).
		WithIsActive(isActive).
		BuildReconstructed()
	store.services[svc.ID()] = svc
	return svc
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves a free slot", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		userID := uuid.New()

		created, err := uc.Create(ctx, userID, svc.ID(), now.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, now.Add(time.Hour), created.StartTime())
		assert.Equal(t, now.Add(2*time.Hour), created.EndTime(), "end time follows service duration")
		assert.Contains(t, store.bookings, created.ID())
	})

	t.Run("unknown service", func(t *testing.T) {
		uc, _, _, now := newBookingFixture(t)

		_, err := uc.Create(ctx, uuid.New(), uuid.New(), now.Add(time.Hour))
		assert.ErrorIs(t, err, errs.ErrServiceNotFound)
	})

	t.Run("inactive service", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, false)

		_, err := uc.Create(ctx, uuid.New(), svc.ID(), now.Add(time.Hour))
		assert.ErrorIs(t, err, errs.ErrServiceInactive)
	})

	t.Run("start time not in the future", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)

		_, err := uc.Create(ctx, uuid.New(), svc.ID(), now)
		assert.ErrorIs(t, err, errs.ErrInvalidStartTime)
	})

	t.Run("overlapping slot conflicts", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)

		_, err := uc.Create(ctx, uuid.New(), svc.ID(), now.Add(time.Hour))
		require.NoError(t, err)

		_, err = uc.Create(ctx, uuid.New(), svc.ID(), now.Add(90*time.Minute))
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("back-to-back slot is accepted", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)

		_, err := uc.Create(ctx, uuid.New(), svc.ID(), now.Add(time.Hour))
		require.NoError(t, err)

		_, err = uc.Create(ctx, uuid.New(), svc.ID(), now.Add(2*time.Hour))
		assert.NoError(t, err)
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()

		first, err := uc.Create(ctx, ownerID, svc.ID(), now.Add(time.Hour))
		require.NoError(t, err)

		cancelled := "cancelled"
		_, err = uc.Update(ctx, first.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{Status: &cancelled})
		require.NoError(t, err)

		_, err = uc.Create(ctx, uuid.New(), svc.ID(), now.Add(time.Hour))
		assert.NoError(t, err)
	})
}

func TestBookingGet(t *testing.T) {
	ctx := context.Background()

	uc, store, _, now := newBookingFixture(t)
	ownerID := uuid.New()
	b := builder.NewBookingBuilder().
		WithUserID(ownerID).
		WithStartTime(now.Add(time.Hour)).
		BuildReconstructed()
	store.bookings[b.ID()] = b

	t.Run("owner can read own booking", func(t *testing.T) {
		found, err := uc.Get(ctx, b.ID(), ownerID, user.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), found.ID())
	})

	t.Run("admin can read any booking", func(t *testing.T) {
		_, err := uc.Get(ctx, b.ID(), uuid.New(), user.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := uc.Get(ctx, b.ID(), uuid.New(), user.RoleUser)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := uc.Get(ctx, uuid.New(), ownerID, user.RoleUser)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestBookingList(t *testing.T) {
	ctx := context.Background()

	uc, store, _, now := newBookingFixture(t)
	aliceID := uuid.New()
	bobID := uuid.New()

	for i, userID := range []uuid.UUID{aliceID, aliceID, bobID} {
		b := builder.NewBookingBuilder().
			WithUserID(userID).
			WithStartTime(now.Add(time.Duration(i+1) * 24 * time.Hour)).
			BuildReconstructed()
		store.bookings[b.ID()] = b
	}

	t.Run("non-admin only sees own bookings", func(t *testing.T) {
		list, err := uc.List(ctx, aliceID, user.RoleUser, shared.BookingFilter{})
		require.NoError(t, err)
		assert.Len(t, list, 2)
		for _, b := range list {
			assert.Equal(t, aliceID, b.UserID())
		}
	})

	t.Run("non-admin cannot widen the filter to other users", func(t *testing.T) {
		list, err := uc.List(ctx, aliceID, user.RoleUser, shared.BookingFilter{UserID: &bobID})
		require.NoError(t, err)
		assert.Len(t, list, 2, "requested user filter is overridden with the actor")
	})

	t.Run("admin sees all bookings", func(t *testing.T) {
		list, err := uc.List(ctx, uuid.New(), user.RoleAdmin, shared.BookingFilter{})
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("time window filter applies", func(t *testing.T) {
		from := now.Add(36 * time.Hour)
		list, err := uc.List(ctx, uuid.New(), user.RoleAdmin, shared.BookingFilter{From: &from})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestBookingUpdate(t *testing.T) {
	ctx := context.Background()

	seedBooking := func(store *fakeStore, svc *service.Service, ownerID uuid.UUID, start time.Time, status booking.Status) *booking.Booking {
		b := builder.NewBookingBuilder().
			WithUserID(ownerID).
			WithServiceID(svc.ID()).
			WithStartTime(start).
			WithDurationMinutes(svc.DurationMinutes()).
			WithStatus(status).
			BuildReconstructed()
		store.bookings[b.ID()] = b
		return b
	}

	t.Run("owner reschedules to a free slot", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusPending)

		newStart := now.Add(5 * time.Hour)
		updated, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{StartTime: &newStart})
		require.NoError(t, err)
		assert.Equal(t, newStart, updated.StartTime())
		assert.Equal(t, newStart.Add(time.Hour), updated.EndTime())
	})

	t.Run("reschedule follows the service's current duration", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusPending)

		// catalog duration changed after the booking was made
		store.services[svc.ID()] = builder.NewServiceBuilder().
			WithID(svc.ID()).
			WithDurationMinutes(90).
			BuildReconstructed()

		newStart := now.Add(6 * time.Hour)
		updated, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{StartTime: &newStart})
		require.NoError(t, err)
		assert.Equal(t, newStart.Add(90*time.Minute), updated.EndTime(),
			"end is recomputed from the catalog, not the old slot")
	})

	t.Run("reschedule ignores the booking's own slot", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusPending)

		// shift by 30 minutes into the old window
		newStart := now.Add(90 * time.Minute)
		_, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{StartTime: &newStart})
		assert.NoError(t, err)
	})

	t.Run("reschedule into another booking conflicts", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusPending)
		seedBooking(store, svc, uuid.New(), now.Add(5*time.Hour), booking.StatusConfirmed)

		newStart := now.Add(5 * time.Hour)
		_, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{StartTime: &newStart})
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("owner cancels own booking", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusConfirmed)

		cancelled := "cancelled"
		updated, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{Status: &cancelled})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, updated.Status())
	})

	t.Run("owner may not confirm", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusPending)

		confirmed := "confirmed"
		_, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{Status: &confirmed})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("admin confirms any booking", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		b := seedBooking(store, svc, uuid.New(), now.Add(time.Hour), booking.StatusPending)

		confirmed := "confirmed"
		updated, err := uc.Update(ctx, b.ID(), uuid.New(), user.RoleAdmin, usecase.UpdateBookingInput{Status: &confirmed})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, updated.Status())
	})

	t.Run("admin re-applying the current status is a no-op", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		b := seedBooking(store, svc, uuid.New(), now.Add(time.Hour), booking.StatusConfirmed)

		confirmed := "confirmed"
		updated, err := uc.Update(ctx, b.ID(), uuid.New(), user.RoleAdmin, usecase.UpdateBookingInput{Status: &confirmed})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, updated.Status())
	})

	t.Run("a non-owner admin's start time is ignored", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		start := now.Add(time.Hour)
		b := seedBooking(store, svc, uuid.New(), start, booking.StatusPending)

		newStart := now.Add(5 * time.Hour)
		confirmed := "confirmed"
		updated, err := uc.Update(ctx, b.ID(), uuid.New(), user.RoleAdmin,
			usecase.UpdateBookingInput{StartTime: &newStart, Status: &confirmed})
		require.NoError(t, err)
		assert.Equal(t, start, updated.StartTime(), "reschedule is an owner action")
		assert.Equal(t, booking.StatusConfirmed, updated.Status())
	})

	t.Run("unknown status string", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusPending)

		bogus := "archived"
		_, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{Status: &bogus})
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("stranger may not update", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		b := seedBooking(store, svc, uuid.New(), now.Add(time.Hour), booking.StatusPending)

		cancelled := "cancelled"
		_, err := uc.Update(ctx, b.ID(), uuid.New(), user.RoleUser, usecase.UpdateBookingInput{Status: &cancelled})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("terminal booking cannot be rescheduled", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		svc := seedService(t, store, 60, true)
		ownerID := uuid.New()
		b := seedBooking(store, svc, ownerID, now.Add(time.Hour), booking.StatusCancelled)

		newStart := now.Add(5 * time.Hour)
		_, err := uc.Update(ctx, b.ID(), ownerID, user.RoleUser, usecase.UpdateBookingInput{StartTime: &newStart})
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestBookingDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes before start", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		ownerID := uuid.New()
		b := builder.NewBookingBuilder().
			WithUserID(ownerID).
			WithStartTime(now.Add(time.Hour)).
			BuildReconstructed()
		store.bookings[b.ID()] = b

		require.NoError(t, uc.Delete(ctx, b.ID(), ownerID, user.RoleUser))
		assert.NotContains(t, store.bookings, b.ID())
	})

	t.Run("owner cannot delete after start", func(t *testing.T) {
		uc, store, mockClock, now := newBookingFixture(t)
		ownerID := uuid.New()
		b := builder.NewBookingBuilder().
			WithUserID(ownerID).
			WithStartTime(now.Add(time.Hour)).
			BuildReconstructed()
		store.bookings[b.ID()] = b

		mockClock.Add(2 * time.Hour)
		err := uc.Delete(ctx, b.ID(), ownerID, user.RoleUser)
		assert.ErrorIs(t, err, errs.ErrBookingStarted)
		assert.Contains(t, store.bookings, b.ID())
	})

	t.Run("admin deletes after start", func(t *testing.T) {
		uc, store, mockClock, now := newBookingFixture(t)
		b := builder.NewBookingBuilder().
			WithStartTime(now.Add(time.Hour)).
			BuildReconstructed()
		store.bookings[b.ID()] = b

		mockClock.Add(2 * time.Hour)
		assert.NoError(t, uc.Delete(ctx, b.ID(), uuid.New(), user.RoleAdmin))
	})

	t.Run("stranger may not delete", func(t *testing.T) {
		uc, store, _, now := newBookingFixture(t)
		b := builder.NewBookingBuilder().
			WithStartTime(now.Add(time.Hour)).
			BuildReconstructed()
		store.bookings[b.ID()] = b

		err := uc.Delete(ctx, b.ID(), uuid.New(), user.RoleUser)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("missing booking", func(t *testing.T) {
		uc, _, _, _ := newBookingFixture(t)

		err := uc.Delete(ctx, uuid.New(), uuid.New(), user.RoleAdmin)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
