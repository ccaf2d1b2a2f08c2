// Copyright (c) 2026 Geodex. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/sec"
	"github.com/geodexhq/geodex/internal/users/auth"
)

// # Test Fakes

type fakeUserRepo struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*auth.User),
		byEmail: make(map[string]*auth.User),
	}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found with this email")
}

func (r *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *auth.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := r.byID[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, id string) error {
	if user, ok := r.byID[id]; ok {
		user.IsActive = false
	}
	return nil
}

type fakeSessionRepo struct {
	byHash map[string]*auth.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byHash: make(map[string]*auth.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *auth.Session) error {
	r.byHash[session.TokenHash] = session
	return nil
}

func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := r.byHash[tokenHash]
	if !ok || session.IsRevoked || session.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("Session not found or expired")
	}
	return session, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, sessionID string) error {
	for _, session := range r.byHash {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	for _, session := range r.byHash {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error { return nil }

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _, _ string, _ time.Duration) (string, error) {
	return "signed-token-for-" + userID, nil
}

func newTestService() (*auth.Service, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	service := auth.NewService(users, sessions, fakeTokenProvider{})
	return service, users, sessions
}

// # Tests

/*
TestRegister_NewAccount verifies the default state of a freshly enrolled user.
*/
func TestRegister_NewAccount(t *testing.T) {
	service, _, _ := newTestService()

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email:        "ada@survey.org",
		Password:     "correct-horse",
		Name:         "Ada Bennett",
		Organization: "National Survey",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
}

/*
TestRegister_DuplicateEmail verifies the conflict guard on re-registration.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _, _ := newTestService()
	input := auth.RegisterInput{Email: "ada@survey.org", Password: "correct-horse", Name: "Ada"}

	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestLogin_IssuesSession verifies the happy-path credential exchange.
*/
func TestLogin_IssuesSession(t *testing.T) {
	service, _, sessions := newTestService()

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "ada@survey.org", Password: "correct-horse", Name: "Ada",
	})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email: "ada@survey.org", Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Len(t, sessions.byHash, 1)
}

/*
TestLogin_WrongPassword verifies the generic unauthorized response.
*/
func TestLogin_WrongPassword(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "ada@survey.org", Password: "correct-horse", Name: "Ada",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginInput{
		Email: "ada@survey.org", Password: "wrong",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestLogin_DeactivatedAccount verifies that inactive users cannot sign in.
*/
func TestLogin_DeactivatedAccount(t *testing.T) {
	service, users, _ := newTestService()

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "ada@survey.org", Password: "correct-horse", Name: "Ada",
	})
	require.NoError(t, err)
	require.NoError(t, users.Deactivate(context.Background(), user.ID))

	_, err = service.Login(context.Background(), auth.LoginInput{
		Email: "ada@survey.org", Password: "correct-horse",
	})

	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestRefreshSession_Rotation verifies refresh token rotation revokes the old session.
*/
func TestRefreshSession_Rotation(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "ada@survey.org", Password: "correct-horse", Name: "Ada",
	})
	require.NoError(t, err)

	first, err := service.Login(context.Background(), auth.LoginInput{
		Email: "ada@survey.org", Password: "correct-horse",
	})
	require.NoError(t, err)

	second, err := service.RefreshSession(context.Background(), first.RefreshToken, "ua", "ip")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-out token must be unusable.
	_, err = service.RefreshSession(context.Background(), first.RefreshToken, "ua", "ip")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestLogout_Idempotent verifies that logging out twice is not an error.
*/
func TestLogout_Idempotent(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "ada@survey.org", Password: "correct-horse", Name: "Ada",
	})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email: "ada@survey.org", Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
}
