package booking

import (
	"context"
	"time"

	"github.com/campushub/resource-hub-backend/internal/resource"
	"github.com/campushub/resource-hub-backend/internal/user"
)

// ResourceLookup is the read-only view of resources the booking engine
// needs: just enough to find out who owns the resource a booking targets.
type ResourceLookup interface {
	GetByID(ctx context.Context, id string) (*resource.Resource, error)
}

type CreateRequest struct {
	ResourceID  string
	RequesterID string
	StartTime   time.Time
	EndTime     time.Time
	Notes       string
}

type Service interface {
	// Create validates the interval, sanitizes notes and inserts the
	// booking in status pending. The conflict check and insert are one
	// atomic unit; see Repository.Create. The caller is responsible for
	// ensuring the resource exists and is published.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Transition moves a booking to a new status, enforcing the
	// transition table and actor permissions. Anything outside the table
	// is rejected with a state or permission error and leaves the record
	// unchanged.
	Transition(ctx context.Context, id string, target Status, actorID string, actorRole user.Role) (*Booking, error)

	// CheckConflict reports whether [start, end) overlaps any active
	// booking for the resource.
	CheckConflict(ctx context.Context, resourceID string, start, end time.Time, excludeBookingID string) (bool, error)

	// Delete is the administrative override that removes the row
	// outright; everyone else frees a slot by cancelling.
	Delete(ctx context.Context, id string, actorRole user.Role) error
}

type service struct {
	repo      Repository
	resources ResourceLookup
}

func NewService(repo Repository, resources ResourceLookup) Service {
	return &service{
		repo:      repo,
		resources: resources,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// Capture the wall clock once so repeated checks within this request
	// cannot disagree about "now".
	now := time.Now().UTC()
	if err := validateInterval(req.StartTime, req.EndTime, now); err != nil {
		return nil, err
	}

	b := &Booking{
		ResourceID:  req.ResourceID,
		RequesterID: req.RequesterID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      StatusPending, // Default status
		Notes:       sanitizeNotes(req.Notes),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// Transition table:
//
//	pending  -> approved   resource owner, staff, admin
//	pending  -> rejected   resource owner, staff, admin
//	pending  -> cancelled  requester only
//	approved -> cancelled  requester only
//
// completed has no transition-in path here; a time-based sweep owns it.
func (s *service) Transition(ctx context.Context, id string, target Status, actorID string, actorRole user.Role) (*Booking, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// State guard first: a terminal booking reports the state problem
	// regardless of who asks.
	switch target {
	case StatusApproved, StatusRejected:
		if b.Status != StatusPending {
			return nil, ErrInvalidTransition
		}
	case StatusCancelled:
		if b.Status != StatusPending && b.Status != StatusApproved {
			return nil, ErrInvalidTransition
		}
	default:
		// pending and completed are never transition targets.
		return nil, ErrInvalidTransition
	}

	// Permission guard.
	switch target {
	case StatusApproved, StatusRejected:
		res, err := s.resources.GetByID(ctx, b.ResourceID)
		if err != nil {
			return nil, err
		}
		isOwner := res.OwnerID == actorID
		if !isOwner && !actorRole.CanModerate() {
			return nil, ErrPermissionDenied
		}
	case StatusCancelled:
		// Cancellation is requester-only; owners, staff and admins
		// reject instead.
		if b.RequesterID != actorID {
			return nil, ErrPermissionDenied
		}
	}

	// Conditional write: if a concurrent actor already moved the row,
	// zero rows match and the repository reports the lost race instead
	// of assuming success.
	if err := s.repo.UpdateStatus(ctx, id, b.Status, target); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) CheckConflict(ctx context.Context, resourceID string, start, end time.Time, excludeBookingID string) (bool, error) {
	return s.repo.HasOverlap(ctx, resourceID, start, end, excludeBookingID)
}

func (s *service) Delete(ctx context.Context, id string, actorRole user.Role) error {
	if actorRole != user.RoleAdmin {
		return ErrPermissionDenied
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
