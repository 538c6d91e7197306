package message

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("thread not found")
	ErrEmptyContent     = errors.New("message content cannot be empty")
	ErrSelfMessage      = errors.New("cannot send a message to yourself")
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrNotParticipant   = errors.New("you are not a participant of this thread")
)

type Message struct {
	ID         string
	ThreadID   string
	SenderID   string
	SenderName string
	ReceiverID string
	Content    string
	CreatedAt  time.Time
}

// ThreadPreview summarizes one conversation for the thread list: the other
// participant and the latest message.
type ThreadPreview struct {
	ThreadID      string
	OtherUserID   string
	OtherUserName string
	LastContent   string
	LastSenderID  string
	LastAt        time.Time
}
