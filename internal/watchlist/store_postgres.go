// Copyright (c) 2026 Reelist. All rights reserved.

package watchlist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngophan/reelist/internal/platform/apperr"
	"github.com/ngophan/reelist/internal/platform/dberr"
)

// savedMovieColumns is the canonical column list shared by every SELECT,
// matching the Scan order in scanSavedMovie.
const savedMovieColumns = `
	id, user_id, catalog_id, title, year, released, runtime, genres,
	director, writers, actors, plot, language, countries, poster,
	vote_average, vote_count, box_office, production, snapshot, added_at`

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the watchlist Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListByUser returns all entries owned by userID, newest first.
func (repository *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*SavedMovie, error) {
	query := `SELECT ` + savedMovieColumns + `
		FROM watchlist.entry
		WHERE user_id = $1
		ORDER BY added_at DESC, id DESC`

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_watchlist_repo_list_failed: %w", err)
	}
	defer rows.Close()

	movies := []*SavedMovie{}
	for rows.Next() {
		movie, err := scanSavedMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_watchlist_repo_scan_failed: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_watchlist_repo_rows_failed: %w", err)
	}

	return movies, nil
}

// Insert persists a new watchlist entry.
//
// The unique index on (user_id, catalog_id) arbitrates concurrent adds:
// its SQLSTATE 23505 is translated to a client-facing Conflict.
func (repository *PostgresRepository) Insert(ctx context.Context, movie *SavedMovie) error {
	const query = `
		INSERT INTO watchlist.entry (
			id, user_id, catalog_id, title, year, released, runtime, genres,
			director, writers, actors, plot, language, countries, poster,
			vote_average, vote_count, box_office, production, snapshot, added_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21
		)`

	_, err := repository.pool.Exec(ctx, query,
		movie.ID,
		movie.UserID,
		movie.CatalogID,
		movie.Title,
		movie.Year,
		movie.Released,
		movie.Runtime,
		movie.Genres,
		movie.Director,
		movie.Writers,
		movie.Actors,
		movie.Plot,
		movie.Language,
		movie.Countries,
		movie.Poster,
		movie.VoteAverage,
		movie.VoteCount,
		movie.BoxOffice,
		movie.Production,
		movie.Snapshot,
		movie.AddedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, "Movie", "Movie already saved")
		}
		return fmt.Errorf("postgres_watchlist_repo_insert_failed: %w", err)
	}

	return nil
}

// Delete removes one entry, conditioned on ownership.
//
// A zero-row result means "not found" whether the record never existed or
// belongs to someone else; the caller cannot tell which.
func (repository *PostgresRepository) Delete(ctx context.Context, userID, recordID string) error {
	const query = `DELETE FROM watchlist.entry WHERE id = $1 AND user_id = $2`

	commandTag, err := repository.pool.Exec(ctx, query, recordID, userID)
	if err != nil {
		return fmt.Errorf("postgres_watchlist_repo_delete_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Movie")
	}

	return nil
}

// scanSavedMovie materializes one row into a [SavedMovie].
func scanSavedMovie(row pgx.Row) (*SavedMovie, error) {
	movie := &SavedMovie{}
	err := row.Scan(
		&movie.ID,
		&movie.UserID,
		&movie.CatalogID,
		&movie.Title,
		&movie.Year,
		&movie.Released,
		&movie.Runtime,
		&movie.Genres,
		&movie.Director,
		&movie.Writers,
		&movie.Actors,
		&movie.Plot,
		&movie.Language,
		&movie.Countries,
		&movie.Poster,
		&movie.VoteAverage,
		&movie.VoteCount,
		&movie.BoxOffice,
		&movie.Production,
		&movie.Snapshot,
		&movie.AddedAt,
	)
	if err != nil {
		return nil, err
	}
	return movie, nil
}
