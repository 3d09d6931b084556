// Copyright (c) 2026 Reelist. All rights reserved.

package watchlist

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ngophan/reelist/internal/catalog"
	"github.com/ngophan/reelist/internal/platform/ctxutil"
	"github.com/ngophan/reelist/internal/platform/middleware"
	"github.com/ngophan/reelist/internal/platform/respond"
	"github.com/ngophan/reelist/internal/platform/validate"
)

// Handler implements the /movies HTTP endpoints.
//
// Every route is mounted behind the authorization gate: an unauthenticated
// request is rejected before any store or upstream work happens.
type Handler struct {
	watchlistService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{watchlistService: service}
}

// Routes returns a [chi.Router] configured with the watchlist routes.
//
// # Endpoints
//   - GET    /                    : Lists the caller's saved movies.
//   - GET    /search?query=       : Searches the external catalog.
//   - GET    /details/{catalogId} : Fetches normalized catalog detail.
//   - POST   /                    : Saves a catalog movie ({movieId}).
//   - DELETE /{recordId}          : Removes one saved movie.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/search", handler.search)
	router.Get("/details/{catalogId}", handler.detail)
	router.Post("/", handler.add)
	router.Delete("/{recordId}", handler.remove)

	return router
}

// list handles GET /movies.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetAuthUser(request.Context())

	movies, err := handler.watchlistService.List(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, movies)
}

// searchResponse is the search envelope the frontend consumes.
type searchResponse struct {
	Results []catalog.MovieSummary `json:"results"`
}

// search handles GET /movies/search?query=.
//
// # Returns
//   - HTTP 200 with {results} on success.
//   - HTTP 400 when the query is blank.
//   - HTTP 404 when the catalog reports zero matches.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		respond.Error(writer, request, validate.RequiredError("query", "Search query is required"))
		return
	}

	results, err := handler.watchlistService.Search(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, searchResponse{Results: results})
}

// detail handles GET /movies/details/{catalogId}.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	catalogID := chi.URLParam(request, "catalogId")

	detail, err := handler.watchlistService.Detail(request.Context(), catalogID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

// addRequest represents the JSON payload expected when saving a movie.
//
// movieId arrives as a JSON number from current frontend builds and as a
// string (possibly "tmdb-" prefixed) from legacy ones; both are accepted.
type addRequest struct {
	MovieID movieID `json:"movieId"`
}

type movieID string

func (id *movieID) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*id = movieID(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return fmt.Errorf("movieId must be a string or number")
	}
	*id = movieID(asNumber.String())
	return nil
}

// add handles POST /movies.
//
// # Returns
//   - HTTP 201 with the persisted entry on success.
//   - HTTP 400 when movieId is missing.
//   - HTTP 404 when the catalog does not know the id.
//   - HTTP 409 when the movie is already on the caller's watchlist.
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetAuthUser(request.Context())

	var input addRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.MovieID == "" {
		respond.Error(writer, request, validate.RequiredError("movieId", "movieId is required"))
		return
	}

	movie, err := handler.watchlistService.Add(request.Context(), claims.UserID, string(input.MovieID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, movie)
}

// remove handles DELETE /movies/{recordId}.
//
// Answers 404 both for unknown ids and for records owned by someone else.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetAuthUser(request.Context())
	recordID := chi.URLParam(request, "recordId")

	if err := handler.watchlistService.Remove(request.Context(), claims.UserID, recordID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Movie deleted successfully",
	})
}
