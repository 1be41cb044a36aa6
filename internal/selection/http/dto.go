package http

import (
	"time"

	"github.com/simlane/bay-booking-backend/internal/group"
	"github.com/simlane/bay-booking-backend/internal/selection"
)

type CreateSessionBody struct {
	LocationID  string `json:"location_id" binding:"required,uuid"`
	CustomerRef string `json:"customer_ref" binding:"required"`
}

type TimeRangeBody struct {
	StartTime time.Time `json:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   time.Time `json:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type OverrideBody struct {
	ResourceID string `json:"resource_id" binding:"required,uuid"`
	Actor      string `json:"actor" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

type ParticipantBody struct {
	Name                string `json:"name" binding:"required"`
	Email               string `json:"email" binding:"omitempty,email"`
	PreferredResourceID string `json:"preferred_resource_id" binding:"omitempty,uuid"`
}

type SetParticipantsBody struct {
	Participants []ParticipantBody `json:"participants" binding:"required,dive"`
}

type AssignBody struct {
	ResourceID string `json:"resource_id" binding:"required,uuid"`
}

type OverrideResponse struct {
	ResourceID string    `json:"resource_id"`
	Actor      string    `json:"actor"`
	Reason     string    `json:"reason"`
	At         time.Time `json:"at"`
}

type SessionResponse struct {
	ID          string             `json:"id"`
	CustomerRef string             `json:"customer_ref"`
	LocationID  string             `json:"location_id"`
	State       string             `json:"state"`
	StartTime   *time.Time         `json:"start_time"`
	EndTime     *time.Time         `json:"end_time"`
	Selected    []string           `json:"selected"`
	Statuses    map[string]string  `json:"statuses"`
	Overrides   []OverrideResponse `json:"overrides"`
}

func NewSessionResponse(s *Session, snap selection.Snapshot) SessionResponse {
	resp := SessionResponse{
		ID:          s.ID,
		CustomerRef: s.CustomerRef,
		LocationID:  s.LocationID,
		State:       string(snap.State),
		Selected:    snap.Selected,
		Statuses:    make(map[string]string, len(snap.Statuses)),
		Overrides:   make([]OverrideResponse, 0, len(snap.Overrides)),
	}
	if resp.Selected == nil {
		resp.Selected = []string{}
	}
	if !snap.Window.IsZero() {
		start, end := snap.Window.Start, snap.Window.End
		resp.StartTime, resp.EndTime = &start, &end
	}
	for id, status := range snap.Statuses {
		resp.Statuses[id] = string(status)
	}
	for _, o := range snap.Overrides {
		resp.Overrides = append(resp.Overrides, OverrideResponse{
			ResourceID: o.ResourceID,
			Actor:      o.Actor,
			Reason:     o.Reason,
			At:         o.At,
		})
	}
	return resp
}

type ParticipantResponse struct {
	Index               int    `json:"index"`
	Name                string `json:"name"`
	Email               string `json:"email,omitempty"`
	PreferredResourceID string `json:"preferred_resource_id,omitempty"`
	AssignedResourceID  string `json:"assigned_resource_id,omitempty"`
	NeedsSplitTime      bool   `json:"needs_split_time"`
}

type ParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	Completion   float64               `json:"completion"`
}

func NewParticipantsResponse(participants []group.Participant, completion float64) ParticipantsResponse {
	resp := ParticipantsResponse{
		Participants: make([]ParticipantResponse, 0, len(participants)),
		Completion:   completion,
	}
	for i, p := range participants {
		resp.Participants = append(resp.Participants, ParticipantResponse{
			Index:               i,
			Name:                p.Name,
			Email:               p.Email,
			PreferredResourceID: p.PreferredResourceID,
			AssignedResourceID:  p.AssignedResourceID,
			NeedsSplitTime:      p.NeedsSplitTime,
		})
	}
	return resp
}
