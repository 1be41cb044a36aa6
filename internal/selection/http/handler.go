package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/simlane/bay-booking-backend/internal/group"
	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/pkg/response"
	"github.com/simlane/bay-booking-backend/internal/resource"
	"github.com/simlane/bay-booking-backend/internal/selection"
	"github.com/simlane/bay-booking-backend/internal/timeslot"
)

type Handler struct {
	registry      *Registry
	resources     resource.Service
	check         selection.CheckFunc
	maxSelectable int
	logger        *zap.Logger
}

func NewHandler(
	registry *Registry,
	resources resource.Service,
	check selection.CheckFunc,
	maxSelectable int,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		registry:      registry,
		resources:     resources,
		check:         check,
		maxSelectable: maxSelectable,
		logger:        logger,
	}
}

// Create opens a selection session over a location's bays.
func (h *Handler) Create(c *gin.Context) {
	var body CreateSessionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resources, err := h.resources.ListByLocation(c.Request.Context(), body.LocationID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		response.Error(c, err)
		return
	}

	session := &Session{
		CustomerRef: body.CustomerRef,
		LocationID:  body.LocationID,
		Selector:    selection.NewCoordinator(h.maxSelectable, h.check, h.logger),
		resources:   resources,
	}
	session.Selector.SetLocation(h.detached(c), body.LocationID, resources)
	h.registry.Add(session)

	c.JSON(http.StatusCreated, NewSessionResponse(session, session.Selector.Snapshot()))
}

func (h *Handler) Get(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSessionResponse(session, session.Selector.Snapshot()))
}

func (h *Handler) Delete(c *gin.Context) {
	h.registry.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// SetTimeRange updates the candidate interval; bay statuses refresh
// asynchronously, so the returned snapshot may still be "checking".
func (h *Handler) SetTimeRange(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var body TimeRangeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window := timeslot.Range{Start: body.StartTime, End: body.EndTime}
	if err := session.Selector.SetTimeRange(h.detached(c), window); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(session, session.Selector.Snapshot()))
}

func (h *Handler) Toggle(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := session.Selector.Toggle(h.detached(c), c.Param("resource_id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(session, session.Selector.Snapshot()))
}

func (h *Handler) SelectAll(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	session.Selector.SelectAll(h.detached(c))
	c.JSON(http.StatusOK, NewSessionResponse(session, session.Selector.Snapshot()))
}

func (h *Handler) ClearAll(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	session.Selector.ClearAll(h.detached(c))
	c.JSON(http.StatusOK, NewSessionResponse(session, session.Selector.Snapshot()))
}

// Override selects a conflicting bay after explicit confirmation.
func (h *Handler) Override(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var body OverrideBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.Selector.SelectWithOverride(h.detached(c), body.ResourceID, body.Actor, body.Reason); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(session, session.Selector.Snapshot()))
}

// SetParticipants replaces the session's group roster. The assignment
// starts empty over the currently selected bays.
func (h *Handler) SetParticipants(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var body SetParticipantsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participants := make([]group.Participant, 0, len(body.Participants))
	for _, p := range body.Participants {
		participants = append(participants, group.Participant{
			Name:                p.Name,
			Email:               p.Email,
			PreferredResourceID: p.PreferredResourceID,
		})
	}

	session.mu.Lock()
	session.group = group.NewCoordinator(participants, session.selectedResources())
	resp := NewParticipantsResponse(session.group.Participants(), session.group.Completion())
	session.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Participants(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.group == nil {
		c.JSON(http.StatusOK, NewParticipantsResponse(nil, 0))
		return
	}
	c.JSON(http.StatusOK, NewParticipantsResponse(session.group.Participants(), session.group.Completion()))
}

func (h *Handler) AutoAssign(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.group == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "participants are not set"})
		return
	}

	session.group.AutoAssign()
	c.JSON(http.StatusOK, NewParticipantsResponse(session.group.Participants(), session.group.Completion()))
}

func (h *Handler) Assign(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant index"})
		return
	}

	var body AssignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.group == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "participants are not set"})
		return
	}

	if err := session.group.Assign(idx, body.ResourceID); err != nil {
		h.groupError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewParticipantsResponse(session.group.Participants(), session.group.Completion()))
}

func (h *Handler) Unassign(c *gin.Context) {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant index"})
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.group == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "participants are not set"})
		return
	}

	if err := session.group.Unassign(idx); err != nil {
		h.groupError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewParticipantsResponse(session.group.Participants(), session.group.Completion()))
}

func (h *Handler) groupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, group.ErrUnknownParticipant):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, group.ErrUnknownResource):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		response.Error(c, err)
	}
}

// detached hands the coordinator a context that survives the request, so
// the async conflict check is not cancelled when the response is written.
func (h *Handler) detached(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
