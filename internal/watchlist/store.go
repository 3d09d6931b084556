// Copyright (c) 2026 Reelist. All rights reserved.

package watchlist

import "context"

// Repository defines the data access contract for watchlist entries.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresRepository]);
// tests use in-memory fakes that enforce the same uniqueness invariant.
type Repository interface {
	// ListByUser returns every entry owned by userID, newest first.
	// No implicit pagination: a watchlist is personal-sized by nature.
	ListByUser(ctx context.Context, userID string) ([]*SavedMovie, error)

	// Insert persists a new entry.
	//
	// Returns [apperr.Conflict] when the (user_id, catalog_id) unique index
	// fires. Two concurrent inserts of the same pair yield exactly one
	// success and one Conflict — the constraint decides, not the app.
	Insert(ctx context.Context, movie *SavedMovie) error

	// Delete removes the entry with recordID only if it is owned by userID.
	//
	// Returns [apperr.NotFound] when nothing was deleted. Non-existence and
	// foreign ownership are deliberately indistinguishable to the caller.
	Delete(ctx context.Context, userID, recordID string) error
}
