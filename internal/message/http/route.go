package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/messages")
	group.Use(authMiddleware)
	{
		group.POST("", h.Send)
		group.GET("/threads", h.Threads)
		group.GET("/threads/:id", h.Thread)
	}
}
