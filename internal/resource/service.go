package resource

import (
	"context"
	"strings"

	"github.com/campushub/resource-hub-backend/internal/user"
)

type CreateRequest struct {
	Title       string
	Description string
	Category    string
	Location    string
	Capacity    int
}

type UpdateRequest struct {
	Title       *string
	Description *string
	Category    *string
	Location    *string
	Capacity    *int
	ImagePath   *string
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	Search(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, actorRole user.Role) (*Resource, error)
	SetStatus(ctx context.Context, id string, status Status, actorID string, actorRole user.Role) (*Resource, error)
	Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error
	Categories(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// canManage reports whether the actor may edit the resource:
// its owner, or any staff/admin user.
func canManage(res *Resource, actorID string, actorRole user.Role) bool {
	return res.OwnerID == actorID || actorRole.CanModerate()
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Resource, error) {
	title := strings.TrimSpace(req.Title)
	if len(title) < 3 {
		return nil, ErrEmptyTitle
	}

	res := &Resource{
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Location:    strings.TrimSpace(req.Location),
		Capacity:    req.Capacity,
		Status:      StatusDraft, // Default status
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Search(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	// Public search only ever sees published resources; owner listings
	// pass their own filter through the handler.
	if filter.Status == "" && filter.OwnerID == "" {
		filter.Status = string(StatusPublished)
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, actorRole user.Role) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canManage(res, actorID, actorRole) {
		return nil, ErrPermissionDenied
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if len(title) < 3 {
			return nil, ErrEmptyTitle
		}
		res.Title = title
	}
	if req.Description != nil {
		res.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		res.Category = strings.TrimSpace(*req.Category)
	}
	if req.Location != nil {
		res.Location = strings.TrimSpace(*req.Location)
	}
	if req.Capacity != nil {
		res.Capacity = *req.Capacity
	}
	if req.ImagePath != nil {
		res.ImagePath = req.ImagePath
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) SetStatus(ctx context.Context, id string, status Status, actorID string, actorRole user.Role) (*Resource, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canManage(res, actorID, actorRole) {
		return nil, ErrPermissionDenied
	}

	res.Status = status
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, actorRole user.Role) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if res.OwnerID != actorID && actorRole != user.RoleAdmin {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
