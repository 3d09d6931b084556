// Copyright (c) 2026 Reelist. All rights reserved.

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngophan/reelist/internal/catalog"
	"github.com/ngophan/reelist/internal/platform/apperr"
)

// newTestClient points a catalog client at the given stub server.
func newTestClient(t *testing.T, upstream *httptest.Server) *catalog.Client {
	t.Helper()
	return catalog.NewClient(catalog.Config{
		BaseURL:      upstream.URL,
		ImageBaseURL: "https://images.example.com/t/p",
		APIKey:       "test-key",
	}, upstream.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestClient_Search verifies query forwarding, api_key injection, and
summary normalization against a stub upstream.
*/
func TestClient_Search(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "knives out", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"id": 546554, "title": "Knives Out", "release_date": "2019-11-27",
			 "poster_path": "/knives.jpg", "vote_average": 7.8, "vote_count": 11000},
			{"id": 9999, "title": "No Poster Movie", "release_date": ""}
		]}`))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream)

	results, err := client.Search(context.Background(), "knives out")
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NotNil(t, results[0].Poster)
	assert.Equal(t, "https://images.example.com/t/p/w500/knives.jpg", *results[0].Poster)
	assert.Equal(t, int64(546554), results[0].ID)
	assert.Nil(t, results[1].Poster)
}

/*
TestClient_Search_Empty checks that zero upstream matches are a valid
client-level outcome (the policy decision lives one layer up).
*/
func TestClient_Search_Empty(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream)

	results, err := client.Search(context.Background(), "zzzzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

/*
TestClient_Search_BlankQuery asserts the validation guard fires before
any network call.
*/
func TestClient_Search_BlankQuery(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected for a blank query")
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream)

	_, err := client.Search(context.Background(), "   ")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestClient_FetchDetail verifies the append_to_response call shape and
full detail normalization including director, cast cap, and snapshot.
*/
func TestClient_FetchDetail(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/546554", r.URL.Path)
		assert.Equal(t, "credits,images,videos", r.URL.Query().Get("append_to_response"))

		_, _ = w.Write([]byte(`{
			"id": 546554, "title": "Knives Out", "release_date": "2019-11-27",
			"runtime": 130, "revenue": 312897920, "original_language": "en",
			"poster_path": "/knives.jpg", "backdrop_path": "/back.jpg",
			"genres": [{"name": "Mystery"}, {"name": "Comedy"}],
			"production_countries": [{"name": "United States of America"}],
			"production_companies": [{"name": "Lionsgate"}],
			"credits": {
				"cast": [{"name": "Daniel Craig", "character": "Benoit Blanc"}],
				"crew": [{"name": "Rian Johnson", "job": "Director"},
						 {"name": "Rian Johnson", "job": "Writer"}]
			},
			"images": {"logos": [{"file_path": "/logo.png", "iso_639_1": "en"}]},
			"videos": {"results": [{"key": "yt1", "name": "Official Trailer", "site": "YouTube", "type": "Trailer"}]}
		}`))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream)

	detail, err := client.FetchDetail(context.Background(), "546554")
	require.NoError(t, err)

	assert.Equal(t, int64(546554), detail.ID)
	require.NotNil(t, detail.Year)
	assert.Equal(t, "2019", *detail.Year)
	assert.Equal(t, "2h 10m", detail.RuntimeDisplay)
	require.NotNil(t, detail.Director)
	assert.Equal(t, "Rian Johnson", *detail.Director)
	assert.Equal(t, []string{"Rian Johnson"}, detail.Writers)
	assert.Equal(t, []string{"Mystery", "Comedy"}, detail.Genres)
	require.NotNil(t, detail.Trailer)
	assert.Equal(t, "https://www.youtube.com/watch?v=yt1", *detail.Trailer)
	require.NotNil(t, detail.Logo)
	assert.Equal(t, "https://images.example.com/t/p/original/logo.png", *detail.Logo)

	// Raw snapshot must carry the full upstream body.
	assert.Contains(t, string(detail.Raw), `"revenue": 312897920`)
}

/*
TestClient_FetchDetail_NotFound covers the upstream's JSON error body
convention for unknown ids.
*/
func TestClient_FetchDetail_NotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code": 34, "status_message": "The resource you requested could not be found."}`))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream)

	_, err := client.FetchDetail(context.Background(), "999999999")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestClient_FetchDetail_Timeout asserts that a slow upstream surfaces as
UPSTREAM_UNAVAILABLE rather than hanging the caller.
*/
func TestClient_FetchDetail_Timeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer upstream.Close()

	client := catalog.NewClient(catalog.Config{
		BaseURL:      upstream.URL,
		ImageBaseURL: "https://images.example.com/t/p",
		APIKey:       "test-key",
	}, &http.Client{Timeout: 20 * time.Millisecond}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.FetchDetail(context.Background(), "546554")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", ae.Code)
	assert.Equal(t, http.StatusBadGateway, ae.HTTPStatus)
}

/*
TestClient_Search_UpstreamError checks 5xx classification.
*/
func TestClient_Search_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream)

	_, err := client.Search(context.Background(), "anything")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", ae.Code)
}
