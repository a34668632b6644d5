//go:build unit

package service_test

import (
	"strings"
	"testing"
	"time"

	"bookit-api/internal/domain/service"
	"bookit-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ServiceBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewServiceBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		actual, err := builder.NewServiceBuilder().
			WithTitle("  Hot Stone Massage  ").
			WithDurationMinutes(45).
			WithCreatedAt(now).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Hot Stone Massage", actual.Title(), "title is trimmed")
		assert.Equal(t, 45, actual.DurationMinutes())
		assert.Equal(t, 45*time.Minute, actual.Duration())
		assert.True(t, actual.IsActive())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.ServiceBuilder) { b.WithTitle("  ") },
				errIs:  service.ErrEmptyTitle,
			},
			{
				name:   "title at maximum length",
				mutate: func(b *builder.ServiceBuilder) { b.WithTitle(strings.Repeat("a", service.MaxTitleLength)) },
			},
			{
				name:   "title exceeds maximum length",
				mutate: func(b *builder.ServiceBuilder) { b.WithTitle(strings.Repeat("a", service.MaxTitleLength+1)) },
				errIs:  service.ErrTitleTooLong,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.ServiceBuilder) { b.WithDescription("") },
				errIs:  service.ErrEmptyDescription,
			},
			{
				name: "description exceeds maximum length",
				mutate: func(b *builder.ServiceBuilder) {
					b.WithDescription(strings.Repeat("a", service.MaxDescriptionLength+1))
				},
				errIs: service.ErrDescriptionTooLong,
			},
			{
				name:   "zero price is allowed",
				mutate: func(b *builder.ServiceBuilder) { b.WithPrice(0) },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ServiceBuilder) { b.WithPrice(-0.01) },
				errIs:  service.ErrNegativePrice,
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.ServiceBuilder) { b.WithDurationMinutes(0) },
				errIs:  service.ErrInvalidDuration,
			},
			{
				name:   "negative duration",
				mutate: func(b *builder.ServiceBuilder) { b.WithDurationMinutes(-30) },
				errIs:  service.ErrInvalidDuration,
			},
		})
	})
}

func TestServiceUpdate(t *testing.T) {
	svc := builder.NewServiceBuilder().BuildReconstructed()

	t.Run("valid update replaces fields", func(t *testing.T) {
		err := svc.Update("New Title", "New description", 120.50, 30, false)
		require.NoError(t, err)
		assert.Equal(t, "New Title", svc.Title())
		assert.Equal(t, 120.50, svc.Price())
		assert.Equal(t, 30, svc.DurationMinutes())
		assert.False(t, svc.IsActive())
	})

	t.Run("invalid update leaves state untouched", func(t *testing.T) {
		err := svc.Update("", "desc", 10, 30, true)
		require.ErrorIs(t, err, service.ErrEmptyTitle)
		assert.Equal(t, "New Title", svc.Title())
	})
}
