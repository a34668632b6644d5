package usecase

import (
	"github.com/google/uuid"

	"bookit-api/internal/domain/booking"
	"bookit-api/internal/domain/review"
	"bookit-api/internal/domain/user"
)

// Access rules shared across usecases. Admins act on any record; everyone
// else only on records they own.

func canAccessBooking(b *booking.Booking, actorID uuid.UUID, role user.Role) bool {
	return role.IsAdmin() || b.IsOwnedBy(actorID)
}

func canModifyReview(rev *review.Review, actorID uuid.UUID, role user.Role) bool {
	return role.IsAdmin() || rev.IsOwnedBy(actorID)
}
