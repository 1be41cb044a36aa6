package http

import "github.com/simlane/bay-booking-backend/internal/favorites"

type LocationQuery struct {
	LocationID string `form:"location_id" binding:"required,uuid"`
}

type ToggleBody struct {
	LocationID string `json:"location_id" binding:"required,uuid"`
	Starred    *bool  `json:"starred" binding:"required"`
}

type EntryResponse struct {
	ResourceID string `json:"resource_id"`
	Number     int    `json:"number"`
	Name       string `json:"name"`
	Starred    bool   `json:"starred"`
	Frequency  int    `json:"frequency"`
}

func NewEntryResponses(entries []favorites.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ResourceID: e.ResourceID,
			Number:     e.Number,
			Name:       e.Name,
			Starred:    e.Starred,
			Frequency:  e.Frequency,
		})
	}
	return out
}

type LastSetupResponse struct {
	ResourceIDs []string `json:"resource_ids"`
}
