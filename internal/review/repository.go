package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the review. The one-review-per-user-per-resource rule
	// is a database unique constraint; a violation surfaces as ErrDuplicate.
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	ListByResource(ctx context.Context, resourceID string, page, pageSize int) ([]*Review, int, error)
	// ListAll returns reviews across every resource, newest first, for
	// the moderation surface.
	ListAll(ctx context.Context, page, pageSize int) ([]*Review, int, error)
	Summary(ctx context.Context, resourceID string) (*Summary, error)
	// TopRated returns published resources ranked by average rating.
	TopRated(ctx context.Context, limit int) ([]*RatedResource, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO public.reviews (resource_id, reviewer_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, rv.ResourceID, rv.ReviewerID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	const query = `
		SELECT rv.id, rv.resource_id, rv.reviewer_id, u.name, rv.rating, rv.comment, rv.created_at, rv.updated_at
		FROM public.reviews rv
		JOIN public.users u ON rv.reviewer_id = u.id
		WHERE rv.id = $1
	`
	var rv Review
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.ResourceID, &rv.ReviewerID, &rv.ReviewerName,
		&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review failed: %w", err)
	}
	return &rv, nil
}

func (r *pgxRepository) ListByResource(ctx context.Context, resourceID string, page, pageSize int) ([]*Review, int, error) {
	return r.list(ctx, resourceID, page, pageSize)
}

func (r *pgxRepository) ListAll(ctx context.Context, page, pageSize int) ([]*Review, int, error) {
	return r.list(ctx, "", page, pageSize)
}

// list pages reviews newest first; an empty resourceID means all
// resources.
func (r *pgxRepository) list(ctx context.Context, resourceID string, page, pageSize int) ([]*Review, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"rv.id", "rv.resource_id", "rv.reviewer_id", "u.name",
		"rv.rating", "rv.comment", "rv.created_at", "rv.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reviews rv").
		Join("public.users u ON rv.reviewer_id = u.id")

	if resourceID != "" {
		query = query.Where(squirrel.Eq{"rv.resource_id": resourceID})
	}

	sql, args, err := query.
		OrderBy("rv.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.ResourceID, &rv.ReviewerID, &rv.ReviewerName,
			&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}
	return reviews, total, nil
}

func (r *pgxRepository) Summary(ctx context.Context, resourceID string) (*Summary, error) {
	const query = `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM public.reviews
		WHERE resource_id = $1
	`
	s := Summary{ResourceID: resourceID}
	if err := r.pool.QueryRow(ctx, query, resourceID).Scan(&s.AverageRating, &s.ReviewCount); err != nil {
		return nil, fmt.Errorf("review summary failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) TopRated(ctx context.Context, limit int) ([]*RatedResource, error) {
	if limit < 1 {
		limit = 5
	}
	const query = `
		SELECT r.id, r.title, r.category, AVG(rv.rating), COUNT(rv.id)
		FROM public.reviews rv
		JOIN public.resources r ON rv.resource_id = r.id
		WHERE r.status = 'published'
		GROUP BY r.id, r.title, r.category
		ORDER BY AVG(rv.rating) DESC, COUNT(rv.id) DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top rated resources failed: %w", err)
	}
	defer rows.Close()

	var out []*RatedResource
	for rows.Next() {
		var rr RatedResource
		if err := rows.Scan(&rr.ResourceID, &rr.Title, &rr.Category, &rr.AverageRating, &rr.ReviewCount); err != nil {
			return nil, fmt.Errorf("scan rated resource failed: %w", err)
		}
		out = append(out, &rr)
	}
	return out, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
