package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title is too long (max 200 characters)")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrDescriptionTooLong = errors.New("description is too long (max 1000 characters)")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidDuration    = errors.New("duration must be positive")
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Service is a bookable catalog entry. Duration drives the end time of
// bookings at creation/reschedule time; stored end times are never
// recomputed when the duration later changes.
type Service struct {
	id              uuid.UUID
	title           string
	description     string
	price           float64
	durationMinutes int
	isActive        bool
	createdAt       time.Time
}

func NewService(now time.Time, title, description string, price float64, durationMinutes int, isActive bool) (*Service, error) {
	if err := validate(title, description, price, durationMinutes); err != nil {
		return nil, err
	}

	return &Service{
		id:              uuid.New(),
		title:           strings.TrimSpace(title),
		description:     strings.TrimSpace(description),
		price:           price,
		durationMinutes: durationMinutes,
		isActive:        isActive,
		createdAt:       now,
	}, nil
}

// Update replaces the catalog fields after validation. Existing bookings keep
// their stored end times even when the duration changes.
func (s *Service) Update(title, description string, price float64, durationMinutes int, isActive bool) error {
	if err := validate(title, description, price, durationMinutes); err != nil {
		return err
	}

	s.title = strings.TrimSpace(title)
	s.description = strings.TrimSpace(description)
	s.price = price
	s.durationMinutes = durationMinutes
	s.isActive = isActive
	return nil
}

func ReconstructService(id uuid.UUID, title, description string, price float64, durationMinutes int, isActive bool, createdAt time.Time) *Service {
	return &Service{
		id:              id,
		title:           title,
		description:     description,
		price:           price,
		durationMinutes: durationMinutes,
		isActive:        isActive,
		createdAt:       createdAt,
	}
}

func validate(title, description string, price float64, durationMinutes int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if price < 0 {
		return ErrNegativePrice
	}
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMinutes) * time.Minute
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Title() string        { return s.title }
func (s *Service) Description() string  { return s.description }
func (s *Service) Price() float64       { return s.price }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) IsActive() bool       { return s.isActive }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
