// Copyright (c) 2026 Reelist. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ngophan/reelist/internal/platform/apperr"
	"github.com/ngophan/reelist/internal/platform/constants"
	"github.com/ngophan/reelist/internal/platform/sec"
	"github.com/ngophan/reelist/pkg/uuidv7"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID string, timeToLive time.Duration) (string, error)
}

// Throttle limits login attempts. [RedisThrottle] is the production
// implementation; a nil Throttle disables limiting.
type Throttle interface {
	// Allow records one attempt for the email+IP pair and returns
	// [apperr.RateLimited] once the window budget is spent.
	Allow(ctx context.Context, email, ip string) error
}

// credentialMismatch is the shared client-facing message for unknown-email
// and wrong-password outcomes. Keeping it byte-identical denies attackers a
// way to probe which emails are registered.
const credentialMismatch = "Incorrect email or password"

// errEmailExists reports a duplicate signup.
//
// The wire contract returns duplicate emails as 400 (not 409): the signup
// form treats it as an input error on the email field.
var errEmailExists = &apperr.AppError{
	Code:       "CONFLICT",
	Message:    "Email already exists",
	HTTPStatus: http.StatusBadRequest,
}

// Service implements the account use cases: signup and login.
//
// # Review Process
//
// This service is security-critical. Any change to hashing, registration,
// or login logic needs a second reviewer.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	loginThrottle  Throttle
}

// NewService constructs a new [Service] with its dependencies.
//
// throttle may be nil to disable login throttling (tests, local dev).
func NewService(userRepo UserRepository, tokenProv TokenProvider, throttle Throttle) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		loginThrottle:  throttle,
	}
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// Register validates, hashes, and persists a brand new user account.
//
// # Business Rules
//   - Emails are normalized (trim + lowercase) before comparison and storage.
//   - Duplicate emails fail with the email-exists error regardless of casing.
//   - The password is stored only as a bcrypt hash.
//
// # Concurrency
//
// The email pre-check gives a friendly fast path; the storage unique index
// on lower(email) is the authoritative guard, so a concurrent duplicate
// signup fails in [UserRepository.Create] with the same client-facing error.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	email := NormalizeEmail(input.Email)

	// ── 1. Uniqueness Pre-Check ───────────────────────────────────────────

	if _, err := service.userRepository.FindByEmail(ctx, email); err == nil {
		return nil, errEmailExists
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Default cost balances security and CPU cost during signup spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		FullName:     input.FullName,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	if err := service.userRepository.Create(ctx, user); err != nil {
		if apperr.As(err) != nil && apperr.As(err).Code == "CONFLICT" {
			// Lost the race against a concurrent duplicate signup.
			return nil, errEmailExists
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
	// IPAddress feeds the brute-force throttle; empty disables per-IP scoping.
	IPAddress string
}

// LoginResult is a successfully issued identity token.
type LoginResult struct {
	// Token is the signed JWT, valid for [constants.AccessTokenTTL].
	Token string
	User  *User
}

// Login validates user credentials and issues an identity token.
//
// # Returns
//   - [apperr.NotFound] with the shared mismatch message when the email is
//     unknown (the wire contract answers 404 here).
//   - [apperr.Unauthorized] with the same message when the password is wrong.
//   - [apperr.RateLimited] when the email+IP pair exhausted its attempt window.
//
// # Flow
//  1. Throttle check (redis fixed window).
//  2. Lookup account by normalized email.
//  3. Verify password hash (bcrypt, constant-time).
//  4. Sign a 1-hour JWT; no server-side session is created.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := NormalizeEmail(input.Email)

	// ── 1. Brute-Force Throttle ───────────────────────────────────────────

	if service.loginThrottle != nil {
		if err := service.loginThrottle.Allow(ctx, email, input.IPAddress); err != nil {
			return nil, err
		}
	}

	// ── 2. Fetch Account ──────────────────────────────────────────────────

	user, err := service.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.NotFoundMessage(credentialMismatch)
	}

	// ── 3. Security Verification ──────────────────────────────────────────

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(credentialMismatch)
	}

	// ── 4. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}
