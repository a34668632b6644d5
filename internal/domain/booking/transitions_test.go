//go:build unit

package booking_test

import (
	"testing"

	"bookit-api/internal/domain/booking"
	"bookit-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionCase struct {
	from  booking.Status
	to    booking.Status
	errIs error // nil means the transition is accepted
}

func runTransitionCases(t *testing.T, isOwner, isAdmin bool, cases []transitionCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tc.from).BuildReconstructed()

			err := b.Transition(tc.to, isOwner, isAdmin)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, b.Status(), "status must not change on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, b.Status())
		})
	}
}

// Every (from, to) pair is covered per actor so the transition rules cannot
// drift without a test noticing. Admins may set any defined status from any
// state; setting the current status is accepted as a no-op.
func TestBookingTransitionAsAdmin(t *testing.T) {
	runTransitionCases(t, false, true, []transitionCase{
		{from: booking.StatusPending, to: booking.StatusPending},
		{from: booking.StatusPending, to: booking.StatusConfirmed},
		{from: booking.StatusPending, to: booking.StatusCancelled},
		{from: booking.StatusPending, to: booking.StatusCompleted},

		{from: booking.StatusConfirmed, to: booking.StatusPending},
		{from: booking.StatusConfirmed, to: booking.StatusConfirmed},
		{from: booking.StatusConfirmed, to: booking.StatusCancelled},
		{from: booking.StatusConfirmed, to: booking.StatusCompleted},

		{from: booking.StatusCancelled, to: booking.StatusPending},
		{from: booking.StatusCancelled, to: booking.StatusConfirmed},
		{from: booking.StatusCancelled, to: booking.StatusCancelled},
		{from: booking.StatusCancelled, to: booking.StatusCompleted},

		{from: booking.StatusCompleted, to: booking.StatusPending},
		{from: booking.StatusCompleted, to: booking.StatusConfirmed},
		{from: booking.StatusCompleted, to: booking.StatusCancelled},
		{from: booking.StatusCompleted, to: booking.StatusCompleted},
	})
}

func TestBookingTransitionAsOwner(t *testing.T) {
	runTransitionCases(t, true, false, []transitionCase{
		{from: booking.StatusPending, to: booking.StatusPending, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusPending, to: booking.StatusConfirmed, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusPending, to: booking.StatusCancelled},
		{from: booking.StatusPending, to: booking.StatusCompleted, errIs: booking.ErrTransitionForbidden},

		{from: booking.StatusConfirmed, to: booking.StatusPending, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusConfirmed, to: booking.StatusConfirmed, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusConfirmed, to: booking.StatusCancelled},
		{from: booking.StatusConfirmed, to: booking.StatusCompleted, errIs: booking.ErrTransitionForbidden},

		{from: booking.StatusCancelled, to: booking.StatusPending, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusCancelled, to: booking.StatusConfirmed, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusCancelled, to: booking.StatusCancelled, errIs: booking.ErrTransitionInvalid},
		{from: booking.StatusCancelled, to: booking.StatusCompleted, errIs: booking.ErrTransitionForbidden},

		{from: booking.StatusCompleted, to: booking.StatusPending, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusCompleted, to: booking.StatusConfirmed, errIs: booking.ErrTransitionForbidden},
		{from: booking.StatusCompleted, to: booking.StatusCancelled, errIs: booking.ErrTransitionInvalid},
		{from: booking.StatusCompleted, to: booking.StatusCompleted, errIs: booking.ErrTransitionForbidden},
	})
}

func TestBookingTransitionAsStranger(t *testing.T) {
	statuses := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
		booking.StatusCompleted,
	}

	var cases []transitionCase
	for _, from := range statuses {
		for _, to := range statuses {
			cases = append(cases, transitionCase{from: from, to: to, errIs: booking.ErrTransitionForbidden})
		}
	}

	runTransitionCases(t, false, false, cases)
}

func TestBookingTransitionUnknownStatus(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildReconstructed()

	for _, target := range []booking.Status{"", "archived", "PENDING"} {
		err := b.Transition(target, false, true)
		assert.ErrorIs(t, err, booking.ErrUnknownStatus, "target %q", target)
		assert.Equal(t, booking.StatusPending, b.Status())
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())

	assert.True(t, booking.StatusPending.BlocksSlot())
	assert.True(t, booking.StatusConfirmed.BlocksSlot())
	assert.False(t, booking.StatusCancelled.BlocksSlot())
	assert.False(t, booking.StatusCompleted.BlocksSlot())
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		status, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := booking.NewStatus("deleted")
	assert.ErrorIs(t, err, booking.ErrUnknownStatus)
}
