package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers selection session routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/sessions")
	{
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Delete)
		group.PUT("/:id/time-range", h.SetTimeRange)
		group.POST("/:id/toggle/:resource_id", h.Toggle)
		group.POST("/:id/select-all", h.SelectAll)
		group.POST("/:id/clear", h.ClearAll)
		group.POST("/:id/override", h.Override)
		group.PUT("/:id/participants", h.SetParticipants)
		group.GET("/:id/participants", h.Participants)
		group.POST("/:id/participants/auto-assign", h.AutoAssign)
		group.PUT("/:id/participants/:idx/assignment", h.Assign)
		group.DELETE("/:id/participants/:idx/assignment", h.Unassign)
	}
}
