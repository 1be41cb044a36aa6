package http

import (
	"time"

	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/pkg/request"
)

// LocationResponse is the JSON shape for a single location.
type LocationResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	OpeningHoursStart string    `json:"opening_hours_start"`
	OpeningHoursEnd   string    `json:"opening_hours_end"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewLocationResponse(l *location.Location) LocationResponse {
	return LocationResponse{
		ID:                l.ID,
		Name:              l.Name,
		OpeningHoursStart: l.OpeningHoursStart,
		OpeningHoursEnd:   l.OpeningHoursEnd,
		Active:            l.Active,
		CreatedAt:         l.CreatedAt,
	}
}

// ListLocationsRequest defines query parameters for listing locations.
type ListLocationsRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}
