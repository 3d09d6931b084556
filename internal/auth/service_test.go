// Copyright (c) 2026 Reelist. All rights reserved.

package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngophan/reelist/internal/auth"
	"github.com/ngophan/reelist/internal/platform/apperr"
	"github.com/ngophan/reelist/internal/platform/sec"
)

// fakeUserRepository is an in-memory UserRepository keyed by normalized email.
type fakeUserRepository struct {
	byEmail map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: map[string]*auth.User{}}
}

func (repo *fakeUserRepository) FindByID(ctx context.Context, id string) (*auth.User, error) {
	for _, user := range repo.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if user, ok := repo.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeUserRepository) Create(ctx context.Context, user *auth.User) error {
	if _, ok := repo.byEmail[user.Email]; ok {
		return apperr.Conflict("Email already exists")
	}
	repo.byEmail[user.Email] = user
	return nil
}

// fakeTokenProvider returns a fixed token string.
type fakeTokenProvider struct {
	lastUserID string
	lastTTL    time.Duration
}

func (provider *fakeTokenProvider) GenerateAccessToken(userID string, timeToLive time.Duration) (string, error) {
	provider.lastUserID = userID
	provider.lastTTL = timeToLive
	return "fake-token", nil
}

// denyAllThrottle rejects every attempt.
type denyAllThrottle struct{}

func (denyAllThrottle) Allow(ctx context.Context, email, ip string) error {
	return apperr.RateLimited(60)
}

/*
TestService_Register checks the happy path: the stored account carries a
normalized email and a bcrypt hash, never the raw password.
*/
func TestService_Register(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, &fakeTokenProvider{}, nil)

	user, err := service.Register(context.Background(), auth.RegisterInput{
		FullName: "Ada Lovelace",
		Email:    "  Ada@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse", user.PasswordHash))
}

/*
TestService_Register_DuplicateEmail asserts the duplicate answer is a
400-classed error, and that casing differences do not evade it.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, &fakeTokenProvider{}, nil)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		FullName: "First", Email: "ada@example.com", Password: "pw-one",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), auth.RegisterInput{
		FullName: "Second", Email: "ADA@EXAMPLE.COM", Password: "pw-two",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Equal(t, "Email already exists", ae.Message)
}

/*
TestService_Login covers the three credential outcomes: success with a
token, unknown email as 404, wrong password as 401 — the latter two with
the byte-identical mismatch message.
*/
func TestService_Login(t *testing.T) {
	repo := newFakeUserRepository()
	tokens := &fakeTokenProvider{}
	service := auth.NewService(repo, tokens, nil)

	registered, err := service.Register(context.Background(), auth.RegisterInput{
		FullName: "Ada Lovelace", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		result, err := service.Login(context.Background(), auth.LoginInput{
			Email: "Ada@Example.com", Password: "correct horse",
		})
		require.NoError(t, err)

		assert.Equal(t, "fake-token", result.Token)
		assert.Equal(t, registered.ID, tokens.lastUserID)
		assert.Equal(t, time.Hour, tokens.lastTTL)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email: "nobody@example.com", Password: "whatever",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
		assert.Equal(t, "Incorrect email or password", ae.Message)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email: "ada@example.com", Password: "incorrect horse",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusUnauthorized, ae.HTTPStatus)
		// Same message as the unknown-email case: no account enumeration.
		assert.Equal(t, "Incorrect email or password", ae.Message)
	})
}

/*
TestService_Login_Throttled verifies the throttle fires before any
credential work.
*/
func TestService_Login_Throttled(t *testing.T) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, &fakeTokenProvider{}, denyAllThrottle{})

	_, err := service.Login(context.Background(), auth.LoginInput{
		Email: "ada@example.com", Password: "correct horse", IPAddress: "10.0.0.1",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusTooManyRequests, ae.HTTPStatus)
}
