// Copyright (c) 2026 Reelist. All rights reserved.

package auth

import "context"

// UserRepository defines the data access contract for user accounts.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]);
// tests use in-memory fakes.
type UserRepository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given normalized email.
	//
	// The caller must pass an already-normalized email ([NormalizeEmail]).
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a brand-new user account.
	//
	// Returns [apperr.Conflict]-classed errors when the unique email
	// constraint fires; the index on lower(email) is the authoritative
	// uniqueness guard.
	Create(ctx context.Context, user *User) error
}
