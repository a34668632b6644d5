package request

type CreateServiceRequest struct {
	Title           string  `json:"title" binding:"required,min=1,max=200"`
	Description     string  `json:"description" binding:"required,min=1,max=1000"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	IsActive        *bool   `json:"is_active"`
}

// Active defaults to true when the field is omitted.
func (r *CreateServiceRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

type UpdateServiceRequest struct {
	Title           *string  `json:"title" binding:"omitempty,min=1,max=200"`
	Description     *string  `json:"description" binding:"omitempty,min=1,max=1000"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active"`
}
