package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers per-customer favorites routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/customers/:ref")
	{
		group.GET("/favorites", h.List)
		group.GET("/favorites/ranked", h.Ranked)
		group.GET("/favorites/last-setup", h.LastSetup)
		group.PUT("/favorites/:resource_id", h.Toggle)
	}
}
