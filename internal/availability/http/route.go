package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers availability routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/availability")
	{
		group.POST("/resolve", h.Resolve)
		group.POST("/conflicts", h.CheckConflicts)
	}
}
