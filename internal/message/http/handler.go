package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushub/resource-hub-backend/internal/auth"
	"github.com/campushub/resource-hub-backend/internal/message"
)

type Handler struct {
	service message.Service
}

func NewHandler(service message.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Send(c *gin.Context) {
	var body SendMessageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.Send(c.Request.Context(), message.SendRequest{
		SenderID:   auth.GetUserID(c),
		ReceiverID: body.ReceiverID,
		Content:    body.Content,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewMessageResponse(m))
}

func (h *Handler) Threads(c *gin.Context) {
	threads, err := h.service.Threads(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list threads"})
		return
	}

	items := make([]ThreadPreviewResponse, len(threads))
	for i, t := range threads {
		items[i] = NewThreadPreviewResponse(t)
	}
	c.JSON(http.StatusOK, gin.H{"threads": items})
}

func (h *Handler) Thread(c *gin.Context) {
	threadID := c.Param("id")
	if _, err := uuid.Parse(threadID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	messages, err := h.service.Thread(c.Request.Context(), threadID, auth.GetUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	items := make([]MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = NewMessageResponse(m)
	}
	c.JSON(http.StatusOK, gin.H{"messages": items})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, message.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
	case errors.Is(err, message.ErrReceiverNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "receiver not found"})
	case errors.Is(err, message.ErrEmptyContent), errors.Is(err, message.ErrSelfMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, message.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
