package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers location-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/locations")
	{
		group.GET("", h.List)                        // List locations
		group.GET("/:id", h.Get)                     // Get location details
		group.GET("/:id/resources", h.ListResources) // List bays at a location
	}
}
