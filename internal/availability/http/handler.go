package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simlane/bay-booking-backend/internal/availability"
	"github.com/simlane/bay-booking-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// Resolve reports whether a bay is free at the requested start time,
// together with the duration menu a customer could book from there.
func (h *Handler) Resolve(c *gin.Context) {
	var body ResolveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), availability.ResolveRequest{
		ResourceID: body.ResourceID,
		Start:      body.StartTime,
		Tier:       body.Tier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResolveResponse(res))
}

// CheckConflicts runs a batch conflict check over the given bays, or
// over every active bay at a location when no ids are supplied.
func (h *Handler) CheckConflicts(c *gin.Context) {
	var body ConflictsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.CheckConflicts(c.Request.Context(), availability.ConflictRequest{
		ResourceIDs: body.ResourceIDs,
		LocationID:  body.LocationID,
		Start:       body.StartTime,
		End:         body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewConflictsResponse(res))
}
