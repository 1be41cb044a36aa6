package http

import (
	"time"

	"github.com/simlane/bay-booking-backend/internal/pkg/request"
	"github.com/simlane/bay-booking-backend/internal/resource"
)

type ResourceResponse struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	Number     int       `json:"number"`
	Name       string    `json:"name"`
	Features   []string  `json:"features"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewResponse(r *resource.Resource) ResourceResponse {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return ResourceResponse{
		ID:         r.ID,
		LocationID: r.LocationID,
		Number:     r.Number,
		Name:       r.Name,
		Features:   features,
		Active:     r.Active,
		CreatedAt:  r.CreatedAt,
	}
}

// ListResourcesRequest defines query parameters for listing resources.
type ListResourcesRequest struct {
	request.ListParams
	LocationID string `form:"location_id" binding:"omitempty,uuid"`
	ActiveOnly bool   `form:"active_only"`
}
