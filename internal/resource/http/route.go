package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/resources")

	// Public browsing
	group.GET("", h.List)
	group.GET("/categories", h.Categories)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	authed := group.Group("")
	authed.Use(authMiddleware)
	{
		authed.POST("", h.Create)
		authed.PATCH("/:id", h.Update)
		authed.PUT("/:id/status", h.SetStatus)
		authed.POST("/:id/image", h.UploadImage)
		authed.DELETE("/:id", h.Delete)
	}
}
