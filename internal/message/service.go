package message

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/resource-hub-backend/internal/user"
)

// UserLookup verifies that a receiver actually exists before a message is
// addressed to them.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type SendRequest struct {
	SenderID   string
	ReceiverID string
	Content    string
}

type Service interface {
	// Send delivers a message, reusing the existing thread between the two
	// users or starting a new one.
	Send(ctx context.Context, req SendRequest) (*Message, error)
	// Thread returns all messages in a thread, oldest first. Only
	// participants may read it.
	Thread(ctx context.Context, threadID, userID string) ([]*Message, error)
	Threads(ctx context.Context, userID string) ([]*ThreadPreview, error)
}

type service struct {
	repo  Repository
	users UserLookup
}

func NewService(repo Repository, users UserLookup) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Send(ctx context.Context, req SendRequest) (*Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if req.SenderID == req.ReceiverID {
		return nil, ErrSelfMessage
	}

	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	threadID, err := s.repo.FindThread(ctx, req.SenderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if threadID == "" {
		threadID = uuid.NewString()
	}

	m := &Message{
		ThreadID:   threadID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    content,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Thread(ctx context.Context, threadID, userID string) ([]*Message, error) {
	ok, err := s.repo.IsParticipant(ctx, threadID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Hide thread existence from non-participants.
		return nil, ErrNotFound
	}
	return s.repo.ListThread(ctx, threadID)
}

func (s *service) Threads(ctx context.Context, userID string) ([]*ThreadPreview, error) {
	return s.repo.ListThreads(ctx, userID)
}
