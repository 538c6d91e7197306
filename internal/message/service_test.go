package message

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/resource-hub-backend/internal/user"
)

type memoryRepository struct {
	nextID   int
	messages []*Message
}

func (r *memoryRepository) Create(_ context.Context, m *Message) error {
	r.nextID++
	m.ID = fmt.Sprintf("msg-%d", r.nextID)
	m.CreatedAt = time.Now()
	clone := *m
	r.messages = append(r.messages, &clone)
	return nil
}

func (r *memoryRepository) FindThread(_ context.Context, userA, userB string) (string, error) {
	for _, m := range r.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			return m.ThreadID, nil
		}
	}
	return "", nil
}

func (r *memoryRepository) ListThread(_ context.Context, threadID string) ([]*Message, error) {
	var out []*Message
	for _, m := range r.messages {
		if m.ThreadID == threadID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memoryRepository) IsParticipant(_ context.Context, threadID, userID string) (bool, error) {
	for _, m := range r.messages {
		if m.ThreadID == threadID && (m.SenderID == userID || m.ReceiverID == userID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) ListThreads(_ context.Context, userID string) ([]*ThreadPreview, error) {
	seen := map[string]bool{}
	var out []*ThreadPreview
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		if m.SenderID != userID && m.ReceiverID != userID {
			continue
		}
		if seen[m.ThreadID] {
			continue
		}
		seen[m.ThreadID] = true
		other := m.SenderID
		if other == userID {
			other = m.ReceiverID
		}
		out = append(out, &ThreadPreview{
			ThreadID:     m.ThreadID,
			OtherUserID:  other,
			LastContent:  m.Content,
			LastSenderID: m.SenderID,
			LastAt:       m.CreatedAt,
		})
	}
	return out, nil
}

type staticUsers struct {
	ids map[string]bool
}

func (s *staticUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if !s.ids[id] {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id}, nil
}

func newTestService() (Service, *memoryRepository) {
	repo := &memoryRepository{}
	users := &staticUsers{ids: map[string]bool{"alice": true, "bob": true, "carol": true}}
	return NewService(repo, users), repo
}

func TestSendValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Send(context.Background(), SendRequest{SenderID: "alice", ReceiverID: "bob", Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = svc.Send(context.Background(), SendRequest{SenderID: "alice", ReceiverID: "alice", Content: "hi"})
	assert.ErrorIs(t, err, ErrSelfMessage)

	_, err = svc.Send(context.Background(), SendRequest{SenderID: "alice", ReceiverID: "ghost", Content: "hi"})
	assert.ErrorIs(t, err, ErrReceiverNotFound)
}

func TestSendReusesThread(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Send(context.Background(), SendRequest{SenderID: "alice", ReceiverID: "bob", Content: "hi"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ThreadID)

	// The reply lands in the same thread even though direction flipped.
	reply, err := svc.Send(context.Background(), SendRequest{SenderID: "bob", ReceiverID: "alice", Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, first.ThreadID, reply.ThreadID)

	// A different pair gets a different thread.
	other, err := svc.Send(context.Background(), SendRequest{SenderID: "alice", ReceiverID: "carol", Content: "hey"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ThreadID, other.ThreadID)
}

func TestThreadParticipantOnly(t *testing.T) {
	svc, _ := newTestService()

	m, err := svc.Send(context.Background(), SendRequest{SenderID: "alice", ReceiverID: "bob", Content: "hi"})
	require.NoError(t, err)

	msgs, err := svc.Thread(context.Background(), m.ThreadID, "bob")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	// Outsiders get not-found, not forbidden, so thread ids leak nothing.
	_, err = svc.Thread(context.Background(), m.ThreadID, "carol")
	assert.ErrorIs(t, err, ErrNotFound)
}
