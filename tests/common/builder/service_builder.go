//go:build unit || e2e

package builder

import (
	"time"

	domservice "bookit-api/internal/domain/service"
	reqdto "bookit-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		Title:           "Deep Tissue Massage",
		Description:     "A 60 minute full body massage session",
		Price:           79.99,
		DurationMinutes: 60,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ServiceBuilder) BuildDomain() (*domservice.Service, error) {
	return domservice.NewService(b.CreatedAt, b.Title, b.Description, b.Price, b.DurationMinutes, b.IsActive)
}

// BuildReconstructed skips validation and keeps the builder ID, which lets
// tests pin stored state that NewService would reject or regenerate.
func (b *ServiceBuilder) BuildReconstructed() *domservice.Service {
	return domservice.ReconstructService(b.ID, b.Title, b.Description, b.Price, b.DurationMinutes, b.IsActive, b.CreatedAt)
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	isActive := b.IsActive
	return reqdto.CreateServiceRequest{
		Title:           b.Title,
		Description:     b.Description,
		Price:           b.Price,
		DurationMinutes: b.DurationMinutes,
		IsActive:        &isActive,
	}
}

func (b *ServiceBuilder) BuildUpdateRequestDTO() reqdto.UpdateServiceRequest {
	title := b.Title
	description := b.Description
	price := b.Price
	duration := b.DurationMinutes
	isActive := b.IsActive
	return reqdto.UpdateServiceRequest{
		Title:           &title,
		Description:     &description,
		Price:           &price,
		DurationMinutes: &duration,
		IsActive:        &isActive,
	}
}

// Fluent builder methods
func (b *ServiceBuilder) WithID(id uuid.UUID) *ServiceBuilder {
	b.ID = id
	return b
}

func (b *ServiceBuilder) WithTitle(title string) *ServiceBuilder {
	b.Title = title
	return b
}

func (b *ServiceBuilder) WithDescription(description string) *ServiceBuilder {
	b.Description = description
	return b
}

func (b *ServiceBuilder) WithPrice(price float64) *ServiceBuilder {
	b.Price = price
	return b
}

func (b *ServiceBuilder) WithDurationMinutes(minutes int) *ServiceBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *ServiceBuilder) WithIsActive(isActive bool) *ServiceBuilder {
	b.IsActive = isActive
	return b
}

func (b *ServiceBuilder) WithCreatedAt(createdAt time.Time) *ServiceBuilder {
	b.CreatedAt = createdAt
	return b
}
