// Copyright (c) 2026 Reelist. All rights reserved.

package watchlist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ngophan/reelist/internal/catalog"
	"github.com/ngophan/reelist/internal/platform/apperr"
	"github.com/ngophan/reelist/internal/platform/validate"
	"github.com/ngophan/reelist/pkg/uuidv7"
)

// Catalog defines the slice of the catalog client the watchlist needs.
//
// # Why an interface?
//
// The service triggers live upstream calls on search/detail/add; tests
// substitute a fake so no network is involved.
type Catalog interface {
	Search(ctx context.Context, query string) ([]catalog.MovieSummary, error)
	FetchDetail(ctx context.Context, catalogID string) (*catalog.MovieDetail, error)
}

// Service implements the watchlist use cases. Every operation is scoped to
// an already-authenticated user id resolved by the authorization gate.
type Service struct {
	repository Repository
	catalog    Catalog
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, catalogClient Catalog, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		catalog:    catalogClient,
		logger:     logger,
	}
}

// List returns the user's saved movies, newest first.
func (service *Service) List(ctx context.Context, userID string) ([]*SavedMovie, error) {
	return service.repository.ListByUser(ctx, userID)
}

// Search queries the external catalog.
//
// # Policy
//
// Zero upstream matches answer as NotFound rather than an empty list: the
// wire contract (and the frontend built against it) treats "no results" as
// a 404 outcome.
func (service *Service) Search(ctx context.Context, query string) ([]catalog.MovieSummary, error) {
	results, err := service.catalog.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, apperr.NotFoundMessage("Movie not found in catalog")
	}

	return results, nil
}

// Detail fetches the normalized catalog detail for one movie.
func (service *Service) Detail(ctx context.Context, catalogID string) (*catalog.MovieDetail, error) {
	if catalogID == "" {
		return nil, validate.RequiredError("catalogId", "Movie id is required")
	}
	return service.catalog.FetchDetail(ctx, catalogID)
}

// Add saves a catalog movie into the user's watchlist.
//
// # Flow
//  1. Normalize the client-provided id (legacy "tmdb-" prefix tolerated).
//  2. Fetch the catalog detail — unknown ids fail with NotFound before
//     anything is written.
//  3. Denormalize the detail into a [SavedMovie] and insert it.
//
// # Idempotency
//
// A duplicate add fails with [apperr.Conflict] ("Movie already saved"),
// raised by the storage unique index. The contract treats that Conflict as
// a client-visible 409; clients are free to regard it as success-equivalent.
func (service *Service) Add(ctx context.Context, userID, movieID string) (*SavedMovie, error) {
	catalogID := NormalizeCatalogID(movieID)
	if catalogID == "" {
		return nil, validate.RequiredError("movieId", "movieId is required")
	}

	// ── 1. Catalog Lookup ─────────────────────────────────────────────────

	detail, err := service.catalog.FetchDetail(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	// ── 2. Denormalization ────────────────────────────────────────────────

	movie := &SavedMovie{
		ID:        uuidv7.New(),
		UserID:    userID,
		CatalogID: fmt.Sprintf("%d", detail.ID),

		Title:       detail.Title,
		Year:        detail.Year,
		Released:    detail.ReleaseDate,
		Runtime:     detail.RuntimeDisplay,
		Genres:      detail.Genres,
		Director:    detail.Director,
		Writers:     detail.Writers,
		Actors:      catalog.CastNames(detail.Cast, catalog.PersistedCastLimit),
		Plot:        detail.Overview,
		Language:    detail.OriginalLanguage,
		Countries:   detail.Countries,
		Poster:      detail.Poster,
		VoteAverage: detail.VoteAverage,
		VoteCount:   detail.VoteCount,
		BoxOffice:   catalog.FormatRevenue(detail.Revenue),
		Production:  detail.Companies,

		AddedAt:  time.Now(),
		Snapshot: detail.Raw,
	}

	// ── 3. Persistence ────────────────────────────────────────────────────

	if err := service.repository.Insert(ctx, movie); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "watchlist_movie_added",
		slog.String("user_id", userID),
		slog.String("catalog_id", movie.CatalogID),
	)

	return movie, nil
}

// Remove deletes one watchlist entry owned by userID.
//
// Ownership mismatch and non-existence both answer NotFound; the service
// never reveals whether the record id exists under another account.
func (service *Service) Remove(ctx context.Context, userID, recordID string) error {
	if recordID == "" {
		return validate.RequiredError("recordId", "Record id is required")
	}
	return service.repository.Delete(ctx, userID, recordID)
}
