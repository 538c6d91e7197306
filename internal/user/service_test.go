package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	nextID  int
	byID    map[string]*User
	byEmail map[string]*User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (r *memoryRepository) Create(_ context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryRepository) List(_ context.Context, _, _ int) ([]*User, int, error) {
	var out []*User
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

func (r *memoryRepository) Update(_ context.Context, u *User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

// plainHasher keeps passwords readable in test fixtures.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hash:" + plain, nil
}

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hash:"+plain {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func newTestService() Service {
	return NewService(newMemoryRepository(), plainHasher{})
}

func TestRegisterDefaults(t *testing.T) {
	svc := newTestService()

	u, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Alice Chen",
		Email:    "  Alice@Campus.EDU ",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@campus.edu", u.Email)
	assert.Equal(t, RoleStudent, u.Role)
	assert.NotEqual(t, "supersecret", u.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "A", Email: "a@campus.edu", Password: "supersecret",
	})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "a@campus.edu", Password: "short",
	})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "a@campus.edu", Password: "supersecret", Role: Role("professor"),
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "alice@campus.edu", Password: "supersecret",
	})
	require.NoError(t, err)

	// Same address with different casing is still a duplicate.
	_, err = svc.Register(context.Background(), RegisterRequest{
		Name: "Alice Again", Email: "ALICE@campus.edu", Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	svc := newTestService()

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "alice@campus.edu", Password: "supersecret",
	})
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "Alice@campus.edu", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = svc.Login(context.Background(), "alice@campus.edu", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown emails get the same error as bad passwords.
	_, err = svc.Login(context.Background(), "nobody@campus.edu", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService()

	u, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "alice@campus.edu", Password: "supersecret",
	})
	require.NoError(t, err)

	name := "Alice C."
	dept := "Physics"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileRequest{
		Name:       &name,
		Department: &dept,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice C.", updated.Name)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Physics", *updated.Department)

	short := "X"
	_, err = svc.UpdateProfile(context.Background(), u.ID, UpdateProfileRequest{Name: &short})
	assert.Error(t, err)
}

func TestDeleteGuardsOwnAccount(t *testing.T) {
	svc := newTestService()

	admin, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Root Admin", Email: "admin@campus.edu", Password: "supersecret", Role: RoleAdmin,
	})
	require.NoError(t, err)

	victim, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Alice", Email: "alice@campus.edu", Password: "supersecret",
	})
	require.NoError(t, err)

	// Admins cannot remove themselves.
	_, err = svc.Delete(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrSelfDelete)
	_, err = svc.GetByID(context.Background(), admin.ID)
	assert.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), victim.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@campus.edu", deleted.Email)
	_, err = svc.GetByID(context.Background(), victim.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Delete(context.Background(), victim.ID, admin.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers(t *testing.T) {
	svc := newTestService()

	for _, email := range []string{"a@campus.edu", "b@campus.edu", "c@campus.edu"} {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Name: "Someone", Email: email, Password: "supersecret",
		})
		require.NoError(t, err)
	}

	users, total, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, users, 3)
}
