// Copyright (c) 2026 Reelist. All rights reserved.

// Package watchlist implements the per-user saved-movie collection.
//
// # Invariant
//
// The pair (UserID, CatalogID) is unique: a user can never save the same
// catalog movie twice. The storage layer's unique index is the sole
// concurrency guard — no application-level locking exists.
package watchlist

import (
	"encoding/json"
	"strings"
	"time"
)

// SavedMovie is one watchlist entry, denormalized from the catalog detail
// payload at the moment the user saved it.
//
// Optional fields use nil as the explicit absent marker, mirroring the
// catalog normalization rules. Snapshot holds the opaque full upstream
// payload for future detail rendering without a re-fetch; it is never
// serialized to clients.
type SavedMovie struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	CatalogID string `json:"movieId"`

	Title       string   `json:"title"`
	Year        *string  `json:"year"`
	Released    string   `json:"released"`
	Runtime     string   `json:"runtime"`
	Genres      []string `json:"genres"`
	Director    *string  `json:"director"`
	Writers     []string `json:"writers"`
	Actors      []string `json:"actors"`
	Plot        string   `json:"plot"`
	Language    string   `json:"language"`
	Countries   []string `json:"countries"`
	Poster      *string  `json:"poster"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int64    `json:"vote_count"`
	BoxOffice   string   `json:"boxOffice"`
	Production  []string `json:"production"`

	AddedAt  time.Time       `json:"addedAt"`
	Snapshot json.RawMessage `json:"-"`
}

// NormalizeCatalogID canonicalizes a client-provided movie id.
//
// Legacy frontend builds send ids in "tmdb-<id>" form; the prefix is
// tolerated and stripped.
func NormalizeCatalogID(movieID string) string {
	return strings.TrimPrefix(strings.TrimSpace(movieID), "tmdb-")
}
