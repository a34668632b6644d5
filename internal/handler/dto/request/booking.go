package request

import "time"

type CreateBookingRequest struct {
	ServiceID string    `json:"service_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

type UpdateBookingRequest struct {
	StartTime *time.Time `json:"start_time"`
	Status    *string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
}

type ListBookingsQuery struct {
	Status *string    `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	From   *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}
