package http

import (
	"time"

	"github.com/simlane/bay-booking-backend/internal/availability"
)

type ResolveBody struct {
	ResourceID string    `json:"resource_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Tier       string    `json:"tier"`
}

type ConflictsBody struct {
	// Either a list of resource ids or a location id for the
	// "book full location" bulk check.
	ResourceIDs []string  `json:"resource_ids" binding:"omitempty,dive,uuid"`
	LocationID  string    `json:"location_id" binding:"omitempty,uuid"`
	StartTime   time.Time `json:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime     time.Time `json:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type IntervalResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type AlternativeResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Minutes   int       `json:"minutes"`
}

type DurationOptionResponse struct {
	Minutes        int    `json:"minutes"`
	Available      bool   `json:"available"`
	Price          int64  `json:"price,omitempty"`
	DisabledReason string `json:"disabled_reason,omitempty"`
}

type ResolveResponse struct {
	ResourceID            string                   `json:"resource_id"`
	IsAvailable           bool                     `json:"is_available"`
	MaxAvailableMinutes   int                      `json:"max_available_minutes"`
	NextBookingStart      *time.Time               `json:"next_booking_start"`
	SuggestedAlternatives []AlternativeResponse    `json:"suggested_alternatives"`
	Durations             []DurationOptionResponse `json:"durations"`
	MaxAllowedMinutes     int                      `json:"max_allowed_minutes"`
	IsValid               bool                     `json:"is_valid"`
}

func NewResolveResponse(r *availability.Resolution) ResolveResponse {
	resp := ResolveResponse{
		ResourceID:            r.Result.ResourceID,
		IsAvailable:           r.Result.IsAvailable,
		MaxAvailableMinutes:   r.Result.MaxAvailableMinutes,
		NextBookingStart:      r.Result.NextBookingStart,
		SuggestedAlternatives: make([]AlternativeResponse, 0, len(r.Result.SuggestedAlternatives)),
		Durations:             make([]DurationOptionResponse, 0, len(r.Menu.Options)),
		MaxAllowedMinutes:     r.Menu.MaxAllowedMinutes,
		IsValid:               r.Menu.IsValid,
	}
	for _, alt := range r.Result.SuggestedAlternatives {
		resp.SuggestedAlternatives = append(resp.SuggestedAlternatives, AlternativeResponse{
			StartTime: alt.Slot.Start,
			EndTime:   alt.Slot.End,
			Minutes:   alt.Minutes,
		})
	}
	for _, opt := range r.Menu.Options {
		resp.Durations = append(resp.Durations, DurationOptionResponse{
			Minutes:        opt.Minutes,
			Available:      opt.Available,
			Price:          opt.Price,
			DisabledReason: opt.DisabledReason,
		})
	}
	return resp
}

type ResourceConflictResponse struct {
	ResourceID          string             `json:"resource_id"`
	Available           bool               `json:"available"`
	MaxAvailableMinutes int                `json:"max_available_minutes"`
	NextBookingStart    *time.Time         `json:"next_booking_start"`
	Conflicts           []IntervalResponse `json:"conflicts"`
}

type ConflictsResponse struct {
	CanBook bool                       `json:"can_book"`
	Results []ResourceConflictResponse `json:"results"`
}

func NewConflictsResponse(r *availability.ConflictCheckResult) ConflictsResponse {
	resp := ConflictsResponse{
		CanBook: r.CanBook,
		Results: make([]ResourceConflictResponse, 0, len(r.Results)),
	}
	for _, rc := range r.Results {
		item := ResourceConflictResponse{
			ResourceID:          rc.ResourceID,
			Available:           rc.Available,
			MaxAvailableMinutes: rc.MaxAvailableMinutes,
			NextBookingStart:    rc.NextBookingStart,
			Conflicts:           make([]IntervalResponse, 0, len(rc.Conflicts)),
		}
		for _, conflict := range rc.Conflicts {
			item.Conflicts = append(item.Conflicts, IntervalResponse{
				StartTime: conflict.Start,
				EndTime:   conflict.End,
			})
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}
