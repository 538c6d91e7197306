package http

import (
	"time"

	"github.com/campushub/resource-hub-backend/internal/message"
	userHttp "github.com/campushub/resource-hub-backend/internal/user/http"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required,uuid"`
	Content    string `json:"content" binding:"required,max=4000"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"thread_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMessageResponse(m *message.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		ThreadID:   m.ThreadID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

type ThreadPreviewResponse struct {
	ThreadID     string           `json:"thread_id"`
	OtherUser    userHttp.UserTag `json:"other_user"`
	LastContent  string           `json:"last_content"`
	LastSenderID string           `json:"last_sender_id"`
	LastAt       time.Time        `json:"last_at"`
}

func NewThreadPreviewResponse(t *message.ThreadPreview) ThreadPreviewResponse {
	return ThreadPreviewResponse{
		ThreadID:     t.ThreadID,
		OtherUser:    userHttp.UserTag{ID: t.OtherUserID, Name: t.OtherUserName},
		LastContent:  t.LastContent,
		LastSenderID: t.LastSenderID,
		LastAt:       t.LastAt,
	}
}
