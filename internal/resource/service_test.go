package resource

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/resource-hub-backend/internal/user"
)

type memoryRepository struct {
	nextID     int
	resources  map[string]*Resource
	lastFilter Filter
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{resources: make(map[string]*Resource)}
}

func (r *memoryRepository) Create(_ context.Context, res *Resource) error {
	r.nextID++
	res.ID = fmt.Sprintf("res-%d", r.nextID)
	clone := *res
	r.resources[res.ID] = &clone
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *res
	return &clone, nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Resource, int, error) {
	r.lastFilter = filter
	var out []*Resource
	for _, res := range r.resources {
		if filter.Status != "" && string(res.Status) != filter.Status {
			continue
		}
		if filter.OwnerID != "" && res.OwnerID != filter.OwnerID {
			continue
		}
		clone := *res
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memoryRepository) Update(_ context.Context, res *Resource) error {
	if _, ok := r.resources[res.ID]; !ok {
		return ErrNotFound
	}
	clone := *res
	r.resources[res.ID] = &clone
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.resources[id]; !ok {
		return ErrNotFound
	}
	delete(r.resources, id)
	return nil
}

func (r *memoryRepository) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, res := range r.resources {
		if res.Category != "" && !seen[res.Category] {
			seen[res.Category] = true
			out = append(out, res.Category)
		}
	}
	return out, nil
}

func TestCreateDefaultsToDraft(t *testing.T) {
	svc := NewService(newMemoryRepository())

	res, err := svc.Create(context.Background(), "owner-1", CreateRequest{
		Title:    "  Study Room 101  ",
		Category: "room",
	})
	require.NoError(t, err)
	assert.Equal(t, "Study Room 101", res.Title)
	assert.Equal(t, StatusDraft, res.Status)
	assert.Equal(t, "owner-1", res.OwnerID)
}

func TestCreateRejectsShortTitle(t *testing.T) {
	svc := NewService(newMemoryRepository())

	_, err := svc.Create(context.Background(), "owner-1", CreateRequest{Title: "  ab "})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestSearchDefaultsToPublished(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo)

	_, _, err := svc.Search(context.Background(), Filter{Keyword: "room"})
	require.NoError(t, err)
	assert.Equal(t, string(StatusPublished), repo.lastFilter.Status)

	// An owner listing sees drafts too.
	_, _, err = svc.Search(context.Background(), Filter{OwnerID: "owner-1"})
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilter.Status)
}

func TestUpdatePermissions(t *testing.T) {
	svc := NewService(newMemoryRepository())

	res, err := svc.Create(context.Background(), "owner-1", CreateRequest{Title: "Study Room 101"})
	require.NoError(t, err)

	title := "Study Room 102"

	_, err = svc.Update(context.Background(), res.ID, UpdateRequest{Title: &title}, "stranger", user.RoleStudent)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	updated, err := svc.Update(context.Background(), res.ID, UpdateRequest{Title: &title}, "owner-1", user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "Study Room 102", updated.Title)

	// Staff can edit resources they do not own.
	title = "Study Room 103"
	updated, err = svc.Update(context.Background(), res.ID, UpdateRequest{Title: &title}, "staff-1", user.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, "Study Room 103", updated.Title)
}

func TestSetStatus(t *testing.T) {
	svc := NewService(newMemoryRepository())

	res, err := svc.Create(context.Background(), "owner-1", CreateRequest{Title: "Study Room 101"})
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), res.ID, Status("retired"), "owner-1", user.RoleStudent)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.SetStatus(context.Background(), res.ID, StatusPublished, "owner-1", user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, updated.Status)
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	svc := NewService(newMemoryRepository())

	res, err := svc.Create(context.Background(), "owner-1", CreateRequest{Title: "Study Room 101"})
	require.NoError(t, err)

	// Staff may edit but not delete.
	err = svc.Delete(context.Background(), res.ID, "staff-1", user.RoleStaff)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svc.Delete(context.Background(), res.ID, "admin-1", user.RoleAdmin)
	assert.NoError(t, err)
}
