package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/resource-hub-backend/internal/concierge"
)

type AskRequest struct {
	Query string `json:"query" binding:"required,max=500"`
}

type AskResponse struct {
	Intent string `json:"intent"`
	Answer string `json:"answer"`
	Data   any    `json:"data,omitempty"`
}

type Handler struct {
	service concierge.Service
}

func NewHandler(service concierge.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Ask(c *gin.Context) {
	var body AskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ans, err := h.service.Ask(c.Request.Context(), body.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to answer question"})
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Intent: string(ans.Intent),
		Answer: ans.Text,
		Data:   ans.Data,
	})
}

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.POST("/concierge/ask", authMiddleware, h.Ask)
}
