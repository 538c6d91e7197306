package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// Reviews hang off the resource they rate.
	resources := g.Group("/resources/:id")
	{
		resources.GET("/reviews", h.ListByResource)
		resources.GET("/rating", h.Summary)
		resources.POST("/reviews", authMiddleware, h.Create)
	}

	g.DELETE("/reviews/:id", authMiddleware, h.Delete)
}
