//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bookit-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid slot", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(time.Hour), slot.End())
		assert.Equal(t, time.Hour, slot.Duration())
	})

	t.Run("start equal to end is rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

func TestSlotFromStart(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	slot, err := booking.SlotFromStart(base, 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, base.Add(90*time.Minute), slot.End())

	_, err = booking.SlotFromStart(base, 0)
	assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mustSlot := func(start, end time.Time) booking.TimeSlot {
		slot, err := booking.NewTimeSlot(start, end)
		require.NoError(t, err)
		return slot
	}

	reference := mustSlot(base, base.Add(time.Hour))

	tests := []struct {
		name    string
		other   booking.TimeSlot
		overlap bool
	}{
		{
			name:    "identical slot overlaps",
			other:   mustSlot(base, base.Add(time.Hour)),
			overlap: true,
		},
		{
			name:    "partial overlap at the front",
			other:   mustSlot(base.Add(-30*time.Minute), base.Add(30*time.Minute)),
			overlap: true,
		},
		{
			name:    "partial overlap at the back",
			other:   mustSlot(base.Add(30*time.Minute), base.Add(90*time.Minute)),
			overlap: true,
		},
		{
			name:    "slot fully contained",
			other:   mustSlot(base.Add(15*time.Minute), base.Add(45*time.Minute)),
			overlap: true,
		},
		{
			name:    "slot fully containing",
			other:   mustSlot(base.Add(-time.Hour), base.Add(2*time.Hour)),
			overlap: true,
		},
		{
			name:    "back-to-back slot after does not overlap",
			other:   mustSlot(base.Add(time.Hour), base.Add(2*time.Hour)),
			overlap: false,
		},
		{
			name:    "back-to-back slot before does not overlap",
			other:   mustSlot(base.Add(-time.Hour), base),
			overlap: false,
		},
		{
			name:    "disjoint slot does not overlap",
			other:   mustSlot(base.Add(3*time.Hour), base.Add(4*time.Hour)),
			overlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, reference.Overlaps(tt.other))
			// overlap is symmetric
			assert.Equal(t, tt.overlap, tt.other.Overlaps(reference))
		})
	}
}
