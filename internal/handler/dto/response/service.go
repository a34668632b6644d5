package response

import (
	"time"

	"bookit-api/internal/domain/service"
)

type ServiceResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromService(svc *service.Service) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID().String(),
		Title:           svc.Title(),
		Description:     svc.Description(),
		Price:           svc.Price(),
		DurationMinutes: svc.DurationMinutes(),
		IsActive:        svc.IsActive(),
		CreatedAt:       svc.CreatedAt(),
	}
}

func FromServices(services []*service.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, FromService(svc))
	}
	return out
}
