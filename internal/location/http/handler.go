package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simlane/bay-booking-backend/internal/location"
	"github.com/simlane/bay-booking-backend/internal/pkg/request"
	"github.com/simlane/bay-booking-backend/internal/pkg/response"
	"github.com/simlane/bay-booking-backend/internal/resource"
	resHttp "github.com/simlane/bay-booking-backend/internal/resource/http"
)

type Handler struct {
	service    location.Service
	resService resource.Service
}

func NewHandler(service location.Service, resService resource.Service) *Handler {
	return &Handler{
		service:    service,
		resService: resService,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListLocationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	filter := location.Filter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	locations, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}

	items := make([]LocationResponse, len(locations))
	for i, l := range locations {
		items[i] = NewLocationResponse(l)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get location"})
		return
	}
	c.JSON(http.StatusOK, NewLocationResponse(l))
}

// ListResources returns every bay at the location ordered by number, so
// the selector can render the full grid.
func (h *Handler) ListResources(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	resources, err := h.resService.ListByLocation(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list resources"})
		return
	}

	items := make([]resHttp.ResourceResponse, len(resources))
	for i, r := range resources {
		items[i] = resHttp.NewResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
