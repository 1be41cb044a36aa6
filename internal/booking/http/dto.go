package http

import (
	"time"

	"github.com/simlane/bay-booking-backend/internal/booking"
	"github.com/simlane/bay-booking-backend/internal/pkg/request"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	ResourceIDs   []string  `json:"resource_ids"`
	LocationID    string    `json:"location_id"`
	CustomerRef   string    `json:"customer_ref"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ResourceIDs:   b.ResourceIDs,
		LocationID:    b.LocationID,
		CustomerRef:   b.CustomerRef,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type CreateBookingBody struct {
	ResourceIDs []string  `json:"resource_ids" binding:"required,min=1,dive,uuid"`
	CustomerRef string    `json:"customer_ref" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime     time.Time `json:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type UpdateBookingBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed no_show"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	ResourceID    string     `form:"resource_id" binding:"omitempty,uuid"`
	LocationID    string     `form:"location_id" binding:"omitempty,uuid"`
	CustomerRef   string     `form:"customer_ref"`
	Status        string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed no_show"`
	StartTimeFrom *time.Time `form:"start_time_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTimeTo   *time.Time `form:"start_time_to" time_format:"2006-01-02T15:04:05Z07:00"`
}
