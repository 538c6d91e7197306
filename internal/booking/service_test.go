package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/resource-hub-backend/internal/resource"
	"github.com/campushub/resource-hub-backend/internal/user"
)

// memoryRepository mirrors the database semantics in memory: the mutex
// stands in for the per-resource row lock, so the overlap check and the
// insert are atomic, and UpdateStatus is a compare-and-set.
type memoryRepository struct {
	mu       sync.Mutex
	nextID   int
	bookings map[string]*Booking
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{bookings: make(map[string]*Booking)}
}

func (r *memoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.overlapLocked(b.ResourceID, b.StartTime, b.EndTime, "") {
		return ErrTimeConflict
	}

	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for _, b := range r.bookings {
		if filter.RequesterID != "" && b.RequesterID != filter.RequesterID {
			continue
		}
		if filter.ResourceID != "" && b.ResourceID != filter.ResourceID {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memoryRepository) HasOverlap(_ context.Context, resourceID string, start, end time.Time, excludeBookingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlapLocked(resourceID, start, end, excludeBookingID), nil
}

func (r *memoryRepository) overlapLocked(resourceID string, start, end time.Time, excludeBookingID string) bool {
	for _, b := range r.bookings {
		if b.ResourceID != resourceID || !b.Status.Active() {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		// Half-open intervals: touching endpoints do not overlap.
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			return true
		}
	}
	return false
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id string, from, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return ErrInvalidTransition
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

type staticResources struct {
	byID map[string]*resource.Resource
}

func (s *staticResources) GetByID(_ context.Context, id string) (*resource.Resource, error) {
	res, ok := s.byID[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return res, nil
}

const (
	ownerID     = "owner-1"
	requesterID = "student-1"
	staffID     = "staff-1"
	adminID     = "admin-1"
	resourceID  = "room-101"
)

func newTestService(t *testing.T) (Service, *memoryRepository) {
	t.Helper()
	repo := newMemoryRepository()
	resources := &staticResources{byID: map[string]*resource.Resource{
		resourceID: {ID: resourceID, OwnerID: ownerID, Title: "Study Room 101", Status: resource.StatusPublished},
	}}
	return NewService(repo, resources), repo
}

func futureSlot(hours int) (time.Time, time.Time) {
	start := time.Now().UTC().Add(time.Duration(hours) * time.Hour).Truncate(time.Minute)
	return start, start.Add(time.Hour)
}

func mustCreate(t *testing.T, svc Service, start, end time.Time) *Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: requesterID,
		StartTime:   start,
		EndTime:     end,
	})
	require.NoError(t, err)
	return b
}

func TestCreateDefaultsToPending(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)

	b, err := svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: requesterID,
		StartTime:   start,
		EndTime:     end,
		Notes:       "  projector needed  ",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "projector needed", b.Notes)
	assert.NotEmpty(t, b.ID)
}

func TestCreateRejectsInvalidInterval(t *testing.T) {
	svc, repo := newTestService(t)
	start, _ := futureSlot(24)

	_, err := svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: requesterID,
		StartTime:   start,
		EndTime:     start,
	})
	assert.ErrorIs(t, err, ErrEndBeforeStart)
	assert.Empty(t, repo.bookings)
}

func TestCreateConflict(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	mustCreate(t, svc, start, end)

	// Fully contained interval conflicts.
	_, err := svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: "student-2",
		StartTime:   start.Add(15 * time.Minute),
		EndTime:     start.Add(30 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Partial overlap conflicts too.
	_, err = svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: "student-2",
		StartTime:   start.Add(30 * time.Minute),
		EndTime:     end.Add(30 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestApprovedBookingStillBlocksSlot(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	_, err := svc.Transition(context.Background(), b.ID, StatusApproved, ownerID, user.RoleStudent)
	require.NoError(t, err)

	// Approval does not free the slot; an overlapping proposal still
	// collides with the approved booking.
	_, err = svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: "student-2",
		StartTime:   start.Add(30 * time.Minute),
		EndTime:     end.Add(30 * time.Minute),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)

	conflict, err := svc.CheckConflict(context.Background(), resourceID, start.Add(30*time.Minute), end.Add(30*time.Minute), "")
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestBackToBackBookingsDoNotConflict(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	mustCreate(t, svc, start, end)

	// Starts exactly when the previous one ends.
	b, err := svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: "student-2",
		StartTime:   end,
		EndTime:     end.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
}

func TestRejectedBookingFreesTheSlot(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	_, err := svc.Transition(context.Background(), b.ID, StatusRejected, ownerID, user.RoleStaff)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateRequest{
		ResourceID:  resourceID,
		RequesterID: "student-2",
		StartTime:   start,
		EndTime:     end,
	})
	assert.NoError(t, err)
}

func TestConcurrentCreatesOnlyOneWins(t *testing.T) {
	svc, repo := newTestService(t)
	start, end := futureSlot(24)

	const n = 16
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(context.Background(), CreateRequest{
				ResourceID:  resourceID,
				RequesterID: fmt.Sprintf("student-%d", i),
				StartTime:   start,
				EndTime:     end,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, ErrTimeConflict)
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)
	assert.Len(t, repo.bookings, 1)
}

func TestTransitionApprove(t *testing.T) {
	cases := []struct {
		name    string
		actorID string
		role    user.Role
		wantErr error
	}{
		{"resource owner", ownerID, user.RoleStudent, nil},
		{"staff", staffID, user.RoleStaff, nil},
		{"admin", adminID, user.RoleAdmin, nil},
		{"requester cannot approve own booking", requesterID, user.RoleStudent, ErrPermissionDenied},
		{"unrelated student", "student-9", user.RoleStudent, ErrPermissionDenied},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			start, end := futureSlot(24)
			b := mustCreate(t, svc, start, end)

			got, err := svc.Transition(context.Background(), b.ID, StatusApproved, tc.actorID, tc.role)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusApproved, got.Status)
		})
	}
}

func TestTransitionCancelIsRequesterOnly(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	// Staff and admin privileges do not extend to cancelling someone
	// else's booking; the moderation verb for them is reject.
	_, err := svc.Transition(context.Background(), b.ID, StatusCancelled, staffID, user.RoleStaff)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = svc.Transition(context.Background(), b.ID, StatusCancelled, adminID, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	got, err := svc.Transition(context.Background(), b.ID, StatusCancelled, requesterID, user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
}

func TestTransitionCancelAfterApproval(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	_, err := svc.Transition(context.Background(), b.ID, StatusApproved, ownerID, user.RoleStudent)
	require.NoError(t, err)

	got, err := svc.Transition(context.Background(), b.ID, StatusCancelled, requesterID, user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
}

func TestTransitionFromTerminalStates(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	_, err := svc.Transition(context.Background(), b.ID, StatusCancelled, requesterID, user.RoleStudent)
	require.NoError(t, err)

	// A cancelled booking reports the state problem to everyone,
	// including actors who would otherwise lack permission.
	for _, target := range []Status{StatusApproved, StatusRejected, StatusCancelled} {
		_, err := svc.Transition(context.Background(), b.ID, target, adminID, user.RoleAdmin)
		assert.ErrorIs(t, err, ErrInvalidTransition, "target %s", target)
		_, err = svc.Transition(context.Background(), b.ID, target, "student-9", user.RoleStudent)
		assert.ErrorIs(t, err, ErrInvalidTransition, "target %s", target)
	}
}

func TestTransitionDoubleApprove(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	_, err := svc.Transition(context.Background(), b.ID, StatusApproved, ownerID, user.RoleStudent)
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), b.ID, StatusApproved, ownerID, user.RoleStudent)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionInvalidTargets(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	_, err := svc.Transition(context.Background(), b.ID, Status("archived"), adminID, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// pending and completed are valid statuses but never transition targets.
	_, err = svc.Transition(context.Background(), b.ID, StatusPending, adminID, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Transition(context.Background(), b.ID, StatusCompleted, adminID, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionMissingBooking(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Transition(context.Background(), "no-such-id", StatusApproved, adminID, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckConflict(t *testing.T) {
	svc, _ := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	conflict, err := svc.CheckConflict(context.Background(), resourceID, start, end, "")
	require.NoError(t, err)
	assert.True(t, conflict)

	// Excluding the booking itself clears the probe.
	conflict, err = svc.CheckConflict(context.Background(), resourceID, start, end, b.ID)
	require.NoError(t, err)
	assert.False(t, conflict)

	conflict, err = svc.CheckConflict(context.Background(), resourceID, end, end.Add(time.Hour), "")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestDeleteIsAdminOnly(t *testing.T) {
	svc, repo := newTestService(t)
	start, end := futureSlot(24)
	b := mustCreate(t, svc, start, end)

	err := svc.Delete(context.Background(), b.ID, user.RoleStaff)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Len(t, repo.bookings, 1)

	err = svc.Delete(context.Background(), b.ID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, repo.bookings)

	err = svc.Delete(context.Background(), b.ID, user.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}
