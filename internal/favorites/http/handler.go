package http

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simlane/bay-booking-backend/internal/favorites"
	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/pkg/response"
)

type Handler struct {
	service favorites.Service
}

func NewHandler(service favorites.Service) *Handler {
	return &Handler{service: service}
}

// Ranked returns the location's bays ordered for quick rebooking.
func (h *Handler) Ranked(c *gin.Context) {
	var query LocationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.service.Ranked(c.Request.Context(), c.Param("ref"), query.LocationID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": NewEntryResponses(entries)})
}

// List returns the customer's starred bay ids at the location.
func (h *Handler) List(c *gin.Context) {
	var query LocationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	starred, err := h.service.Favorites(c.Request.Context(), c.Param("ref"), query.LocationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	ids := make([]string, 0, len(starred))
	for id, on := range starred {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	c.JSON(http.StatusOK, gin.H{"resource_ids": ids})
}

// LastSetup returns the bays of the customer's most recent booking at
// the location.
func (h *Handler) LastSetup(c *gin.Context) {
	var query LocationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.service.LastSetup(c.Request.Context(), c.Param("ref"), query.LocationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, LastSetupResponse{ResourceIDs: ids})
}

// Toggle stars or unstars a bay. Writes are debounced, so the call
// returns before the store is updated.
func (h *Handler) Toggle(c *gin.Context) {
	resourceID := c.Param("resource_id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}

	var body ToggleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.service.Toggle(c.Param("ref"), body.LocationID, resourceID, *body.Starred)
	c.Status(http.StatusAccepted)
}
