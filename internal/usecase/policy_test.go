//go:build unit

package usecase

import (
	"testing"

	"bookit-api/internal/domain/user"
	"bookit-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccessBooking(t *testing.T) {
	ownerID := uuid.New()
	b := builder.NewBookingBuilder().WithUserID(ownerID).BuildReconstructed()

	assert.True(t, canAccessBooking(b, ownerID, user.RoleUser))
	assert.True(t, canAccessBooking(b, uuid.New(), user.RoleAdmin))
	assert.False(t, canAccessBooking(b, uuid.New(), user.RoleUser))
}

func TestCanModifyReview(t *testing.T) {
	authorID := uuid.New()
	rev := builder.NewReviewBuilder().WithUserID(authorID).BuildReconstructed()

	assert.True(t, canModifyReview(rev, authorID, user.RoleUser))
	assert.True(t, canModifyReview(rev, uuid.New(), user.RoleAdmin))
	assert.False(t, canModifyReview(rev, uuid.New(), user.RoleUser))
}
