package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// FindThread returns the id of an existing thread between two users,
	// or "" when they have never messaged each other.
	FindThread(ctx context.Context, userA, userB string) (string, error)
	ListThread(ctx context.Context, threadID string) ([]*Message, error)
	// IsParticipant reports whether the user has sent or received a
	// message in the thread.
	IsParticipant(ctx context.Context, threadID, userID string) (bool, error)
	// ListThreads returns one preview per thread the user participates
	// in, newest activity first.
	ListThreads(ctx context.Context, userID string) ([]*ThreadPreview, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, m *Message) error {
	const query = `
		INSERT INTO public.messages (thread_id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, m.ThreadID, m.SenderID, m.ReceiverID, m.Content).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create message failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) FindThread(ctx context.Context, userA, userB string) (string, error) {
	// A thread is identified by its participant pair regardless of
	// direction.
	const query = `
		SELECT thread_id
		FROM public.messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		LIMIT 1
	`
	var threadID string
	err := r.pool.QueryRow(ctx, query, userA, userB).Scan(&threadID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No prior conversation; the caller mints a new thread id.
			return "", nil
		}
		return "", fmt.Errorf("find thread failed: %w", err)
	}
	return threadID, nil
}

func (r *pgxRepository) ListThread(ctx context.Context, threadID string) ([]*Message, error) {
	const query = `
		SELECT m.id, m.thread_id, m.sender_id, u.name, m.receiver_id, m.content, m.created_at
		FROM public.messages m
		JOIN public.users u ON m.sender_id = u.id
		WHERE m.thread_id = $1
		ORDER BY m.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("list thread messages failed: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderID, &m.SenderName, &m.ReceiverID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message failed: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, nil
}

func (r *pgxRepository) IsParticipant(ctx context.Context, threadID, userID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM public.messages
			WHERE thread_id = $1 AND (sender_id = $2 OR receiver_id = $2)
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, threadID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check thread participant failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) ListThreads(ctx context.Context, userID string) ([]*ThreadPreview, error) {
	// DISTINCT ON picks the newest message per thread; the outer ORDER BY
	// sorts the previews by that message's timestamp.
	const query = `
		SELECT t.thread_id, t.other_id, u.name, t.content, t.sender_id, t.created_at
		FROM (
			SELECT DISTINCT ON (thread_id)
				thread_id,
				CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS other_id,
				content, sender_id, created_at
			FROM public.messages
			WHERE sender_id = $1 OR receiver_id = $1
			ORDER BY thread_id, created_at DESC
		) t
		JOIN public.users u ON t.other_id = u.id
		ORDER BY t.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list threads failed: %w", err)
	}
	defer rows.Close()

	var threads []*ThreadPreview
	for rows.Next() {
		var t ThreadPreview
		if err := rows.Scan(&t.ThreadID, &t.OtherUserID, &t.OtherUserName, &t.LastContent, &t.LastSenderID, &t.LastAt); err != nil {
			return nil, fmt.Errorf("scan thread preview failed: %w", err)
		}
		threads = append(threads, &t)
	}
	return threads, nil
}
