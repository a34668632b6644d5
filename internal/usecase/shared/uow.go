package shared

import (
	"context"

	"bookit-api/internal/domain/booking"
	"bookit-api/internal/domain/review"
	"bookit-api/internal/domain/service"
	"bookit-api/internal/domain/user"
	"bookit-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Services() ServiceRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error)
	Update(ctx context.Context, dbtx db.DBTX, u *user.User) error
}

type ServiceRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, svc *service.Service) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*service.Service, error)
	List(ctx context.Context, dbtx db.DBTX, filter ServiceFilter) ([]*service.Service, error)
	Update(ctx context.Context, dbtx db.DBTX, svc *service.Service) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, dbtx db.DBTX, filter BookingFilter) ([]*booking.Booking, error)
	// HasOverlap reports whether a slot-blocking booking for the service
	// overlaps the given half-open interval, optionally excluding one booking.
	HasOverlap(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*review.Review, error)
	ListByService(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID) ([]*review.Review, error)
	Update(ctx context.Context, dbtx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}
