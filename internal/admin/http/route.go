package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("/stats", h.Stats)
		group.GET("/usage/categories", h.UsageByCategory)
		group.GET("/usage/departments", h.UsageByDepartment)
		group.GET("/users", h.ListUsers)
		group.DELETE("/users/:id", h.DeleteUser)
		group.GET("/reviews", h.ListReviews)
		group.GET("/logs", h.ListLogs)
	}
}
