package review

import (
	"context"
	"strings"

	"github.com/campushub/resource-hub-backend/internal/user"
)

type CreateRequest struct {
	ResourceID string
	ReviewerID string
	Rating     int
	Comment    string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	ListByResource(ctx context.Context, resourceID string, page, pageSize int) ([]*Review, int, error)
	// ListAll is the moderation view across all resources.
	ListAll(ctx context.Context, page, pageSize int) ([]*Review, int, error)
	Summary(ctx context.Context, resourceID string) (*Summary, error)
	TopRated(ctx context.Context, limit int) ([]*RatedResource, error)
	// Delete removes a review. Allowed for the author and for moderators.
	Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	rv := &Review{
		ResourceID: req.ResourceID,
		ReviewerID: req.ReviewerID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListByResource(ctx context.Context, resourceID string, page, pageSize int) ([]*Review, int, error) {
	return s.repo.ListByResource(ctx, resourceID, page, pageSize)
}

func (s *service) ListAll(ctx context.Context, page, pageSize int) ([]*Review, int, error) {
	return s.repo.ListAll(ctx, page, pageSize)
}

func (s *service) Summary(ctx context.Context, resourceID string) (*Summary, error) {
	return s.repo.Summary(ctx, resourceID)
}

func (s *service) TopRated(ctx context.Context, limit int) ([]*RatedResource, error) {
	return s.repo.TopRated(ctx, limit)
}

func (s *service) Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rv.ReviewerID != actorID && !actorRole.CanModerate() {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
