// Copyright (c) 2026 Geodex. All rights reserved.

package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/sec"
	"github.com/geodexhq/geodex/internal/users/account"
	"github.com/geodexhq/geodex/internal/users/auth"
	"github.com/geodexhq/geodex/pkg/pagination"
	"github.com/geodexhq/geodex/pkg/pointer"
)

// # Test Fakes

type fakeAccountRepo struct {
	users map[string]*auth.User
	order []string
}

func newFakeAccountRepo(users ...*auth.User) *fakeAccountRepo {
	repo := &fakeAccountRepo{users: make(map[string]*auth.User)}
	for _, user := range users {
		repo.users[user.ID] = user
		repo.order = append(repo.order, user.ID)
	}
	return repo
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (r *fakeAccountRepo) List(_ context.Context, onlyUserID string, _ pagination.Params) ([]auth.User, int, error) {
	var result []auth.User
	for _, id := range r.order {
		if onlyUserID != "" && id != onlyUserID {
			continue
		}
		result = append(result, *r.users[id])
	}
	return result, len(result), nil
}

func (r *fakeAccountRepo) Update(_ context.Context, user *auth.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeAccountRepo) Deactivate(_ context.Context, id string) error {
	if user, ok := r.users[id]; ok {
		user.IsActive = false
	}
	return nil
}

type fakeSessionRepo struct {
	revokedFor []string
}

func (r *fakeSessionRepo) Create(_ context.Context, _ *auth.Session) error { return nil }
func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, _ string) (*auth.Session, error) {
	return nil, apperr.NotFound("Session not found or expired")
}
func (r *fakeSessionRepo) Revoke(_ context.Context, _ string) error { return nil }
func (r *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	r.revokedFor = append(r.revokedFor, userID)
	return nil
}
func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error { return nil }

func seedUsers() (*auth.User, *auth.User, *auth.User) {
	admin := &auth.User{ID: "admin-1", Email: "root@geodex.app", Role: sec.RoleAdmin, IsActive: true}
	alice := &auth.User{ID: "user-alice", Email: "alice@survey.org", Name: "Alice", Role: sec.RoleUser, IsActive: true}
	bob := &auth.User{ID: "user-bob", Email: "bob@survey.org", Name: "Bob", Role: sec.RoleUser, IsActive: true}
	return admin, alice, bob
}

// # Tests

/*
TestListUsers_RoleVisibility verifies the listing isolation rule: admins see
everyone, regular users see only themselves.
*/
func TestListUsers_RoleVisibility(t *testing.T) {
	admin, alice, bob := seedUsers()
	service := account.NewService(newFakeAccountRepo(admin, alice, bob), &fakeSessionRepo{})

	adminPage, total, err := service.ListUsers(context.Background(),
		account.Requester{UserID: admin.ID, Role: sec.RoleAdmin}, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, adminPage, 3)

	alicePage, total, err := service.ListUsers(context.Background(),
		account.Requester{UserID: alice.ID, Role: sec.RoleUser}, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, alicePage, 1)
	assert.Equal(t, alice.ID, alicePage[0].ID)
}

/*
TestGetProfile_OutOfScopeBehavesAsMissing verifies that a user resolving a
peer's account receives NOT_FOUND, not FORBIDDEN.
*/
func TestGetProfile_OutOfScopeBehavesAsMissing(t *testing.T) {
	admin, alice, bob := seedUsers()
	service := account.NewService(newFakeAccountRepo(admin, alice, bob), &fakeSessionRepo{})

	_, err := service.GetProfile(context.Background(),
		account.Requester{UserID: alice.ID, Role: sec.RoleUser}, bob.ID)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// The same lookup succeeds for an administrator.
	user, err := service.GetProfile(context.Background(),
		account.Requester{UserID: admin.ID, Role: sec.RoleAdmin}, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, user.ID)
}

/*
TestUpdateProfile_PartialMerge verifies that nil fields are left unchanged.
*/
func TestUpdateProfile_PartialMerge(t *testing.T) {
	admin, alice, _ := seedUsers()
	alice.Organization = "National Survey"
	service := account.NewService(newFakeAccountRepo(admin, alice), &fakeSessionRepo{})

	updated, err := service.UpdateProfile(context.Background(),
		account.Requester{UserID: alice.ID, Role: sec.RoleUser}, alice.ID,
		account.UpdateProfileInput{Name: pointer.To("Alice Chen")})

	require.NoError(t, err)
	assert.Equal(t, "Alice Chen", updated.Name)
	assert.Equal(t, "National Survey", updated.Organization)
}

/*
TestDeactivateAccount_RevokesSessions verifies deactivation side effects.
*/
func TestDeactivateAccount_RevokesSessions(t *testing.T) {
	admin, alice, _ := seedUsers()
	sessions := &fakeSessionRepo{}
	service := account.NewService(newFakeAccountRepo(admin, alice), sessions)

	err := service.DeactivateAccount(context.Background(),
		account.Requester{UserID: admin.ID, Role: sec.RoleAdmin}, alice.ID)

	require.NoError(t, err)
	assert.False(t, alice.IsActive)
	assert.Contains(t, sessions.revokedFor, alice.ID)
}
