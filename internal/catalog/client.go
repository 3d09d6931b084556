// Copyright (c) 2026 Reelist. All rights reserved.

/*
Package catalog wraps the external movie-catalog HTTP API (TMDB-compatible).

It is the only package that speaks the upstream wire format. Everything it
returns is normalized into the stable [MovieSummary] / [MovieDetail]
representations, with nil pointers and empty slices as explicit markers for
fields the upstream omitted.

Architecture:

  - One live upstream call per search/detail request; no caching, no retry.
  - Calls are bounded by a configurable timeout; breaching it surfaces as a
    retryable UPSTREAM_UNAVAILABLE condition to the caller.
  - Unknown ids map to NOT_FOUND, never to a raw upstream error body.
*/
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ngophan/reelist/internal/platform/apperr"
	"github.com/ngophan/reelist/internal/platform/validate"
)

// Config holds the catalog client settings, injected from the process config.
type Config struct {
	// BaseURL is the catalog API root (e.g. https://api.themoviedb.org/3).
	BaseURL string
	// ImageBaseURL is the catalog image CDN root (e.g. https://image.tmdb.org/t/p).
	ImageBaseURL string
	// APIKey authenticates every upstream call via the api_key query parameter.
	APIKey string
}

// Client is the movie-catalog API client.
//
// # Concurrency
//
// Client is safe for concurrent use: it holds only immutable configuration
// and the shared [http.Client], which manages its own connection pool.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	imageBaseURL string
	apiKey       string
	logger       *slog.Logger
}

// NewClient constructs a catalog [Client].
//
// # Parameters
//   - cfg: Catalog endpoints and credentials.
//   - httpClient: The HTTP client to use; its Timeout bounds every upstream
//     call. Pass a client tuned by the caller — the constructor never
//     mutates it.
//   - logger: Structured logger for upstream call diagnostics.
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		apiKey:       cfg.APIKey,
		logger:       logger,
	}
}

// Search queries the catalog for movies matching the given text.
//
// # Returns
//   - The normalized result list, which may be empty. Zero upstream matches
//     are a valid outcome here; the HTTP layer decides how to present them.
//   - [apperr.ValidationError] if the query is blank.
//   - [apperr.UpstreamUnavailable] if the catalog cannot be reached in time.
func (client *Client) Search(ctx context.Context, query string) ([]MovieSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, validate.RequiredError("query", "Search query is required")
	}

	params := url.Values{}
	params.Set("api_key", client.apiKey)
	params.Set("query", query)
	endpoint := client.baseURL + "/search/movie?" + params.Encode()

	body, _, err := client.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperr.UpstreamUnavailable(fmt.Errorf("catalog: malformed search response: %w", err))
	}

	results := make([]MovieSummary, 0, len(payload.Results))
	for _, raw := range payload.Results {
		results = append(results, normalizeSummary(raw, client.imageBaseURL))
	}

	client.logger.DebugContext(ctx, "catalog_search_completed",
		slog.String("query", query),
		slog.Int("results", len(results)),
	)

	return results, nil
}

// FetchDetail retrieves and normalizes the full detail record for one
// catalog id, with credits, images, and videos embedded in a single call.
//
// # Returns
//   - The normalized [MovieDetail], carrying the raw payload snapshot.
//   - [apperr.NotFound] if the upstream reports an unknown id.
//   - [apperr.UpstreamUnavailable] on timeout or upstream failure.
func (client *Client) FetchDetail(ctx context.Context, catalogID string) (*MovieDetail, error) {
	params := url.Values{}
	params.Set("api_key", client.apiKey)
	params.Set("append_to_response", "credits,images,videos")
	endpoint := client.baseURL + "/movie/" + url.PathEscape(catalogID) + "?" + params.Encode()

	body, status, err := client.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var payload detailPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperr.UpstreamUnavailable(fmt.Errorf("catalog: malformed detail response: %w", err))
	}

	// The upstream reports unknown ids as a JSON error body (status_code set,
	// no movie id), usually alongside HTTP 404.
	if status == http.StatusNotFound || payload.StatusCode != 0 || payload.ID == 0 {
		return nil, apperr.NotFound("Movie")
	}

	return normalizeDetail(payload, body, client.imageBaseURL), nil
}

// get performs one bounded upstream GET and returns the response body.
//
// Network failures, timeouts, and 5xx responses all classify as
// [apperr.UpstreamUnavailable]; 4xx bodies are returned to the caller for
// payload-level interpretation.
func (client *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("catalog: build request: %w", err))
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		// Covers DNS failures, connection refusal, and timeout expiry. The
		// endpoint is not logged to keep the api_key out of log streams.
		client.logger.WarnContext(ctx, "catalog_call_failed", slog.Any("error", errors.Unwrap(err)))
		return nil, 0, apperr.UpstreamUnavailable(err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode >= http.StatusInternalServerError {
		return nil, 0, apperr.UpstreamUnavailable(fmt.Errorf("catalog: upstream returned %d", response.StatusCode))
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, 0, apperr.UpstreamUnavailable(fmt.Errorf("catalog: read response: %w", err))
	}

	return body, response.StatusCode, nil
}
