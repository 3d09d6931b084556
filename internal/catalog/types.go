// Copyright (c) 2026 Reelist. All rights reserved.

package catalog

import "encoding/json"

// # Upstream wire types
//
// These structs mirror the raw catalog API payloads. They never leave this
// package: the normalization layer converts them into the stable
// [MovieSummary] / [MovieDetail] representations, isolating upstream schema
// drift behind a single boundary.

// searchResponse is the envelope of the search endpoint.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

// searchResult is one raw search hit.
type searchResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
}

// detailPayload is the raw movie-detail response with appended credits,
// images, and videos.
//
// StatusCode/StatusMessage are only present on error payloads: the upstream
// reports unknown ids as a JSON body with status_code set.
type detailPayload struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`

	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	ReleaseDate         string          `json:"release_date"`
	Overview            string          `json:"overview"`
	OriginalLanguage    string          `json:"original_language"`
	Runtime             int             `json:"runtime"`
	Revenue             int64           `json:"revenue"`
	VoteAverage         float64         `json:"vote_average"`
	VoteCount           int64           `json:"vote_count"`
	PosterPath          *string         `json:"poster_path"`
	BackdropPath        *string         `json:"backdrop_path"`
	Genres              []namedRef      `json:"genres"`
	ProductionCountries []namedRef      `json:"production_countries"`
	ProductionCompanies []namedRef      `json:"production_companies"`
	Credits             *creditsPayload `json:"credits"`
	Images              *imagesPayload  `json:"images"`
	Videos              *videosPayload  `json:"videos"`
}

// namedRef is any upstream object we only keep the name of (genres,
// countries, companies).
type namedRef struct {
	Name string `json:"name"`
}

type creditsPayload struct {
	Cast []castEntry `json:"cast"`
	Crew []crewEntry `json:"crew"`
}

type castEntry struct {
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

type crewEntry struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type imagesPayload struct {
	Logos []logoEntry `json:"logos"`
}

type logoEntry struct {
	FilePath string `json:"file_path"`
	Language string `json:"iso_639_1"`
}

type videosPayload struct {
	Results []videoEntry `json:"results"`
}

type videoEntry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// # Normalized types

// MovieSummary is one normalized search result.
//
// Poster is an absolute image URL, or nil when the upstream carried no
// poster path. JSON keys match the upstream names the existing frontend
// already consumes.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Poster      *string `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
}

// CastMember is one normalized cast credit, in upstream-provided order.
type CastMember struct {
	Name      string  `json:"name"`
	Character string  `json:"character"`
	Profile   *string `json:"profile_path"`
}

// MovieDetail is the normalized movie-detail representation.
//
// The type is total: every field is always present, with nil pointers and
// empty slices as the explicit absent-value markers. Raw carries the full
// upstream payload for persistence and is never serialized to clients.
type MovieDetail struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	ReleaseDate      string       `json:"release_date"`
	Year             *string      `json:"year"`
	Overview         string       `json:"overview"`
	OriginalLanguage string       `json:"original_language"`
	Runtime          int          `json:"runtime"`
	RuntimeDisplay   string       `json:"runtime_display"`
	Revenue          int64        `json:"revenue"`
	VoteAverage      float64      `json:"vote_average"`
	VoteCount        int64        `json:"vote_count"`
	Poster           *string      `json:"poster"`
	Backdrop         *string      `json:"backdrop"`
	Logo             *string      `json:"logo"`
	Trailer          *string      `json:"trailer"`
	Director         *string      `json:"director"`
	Writers          []string     `json:"writers"`
	Genres           []string     `json:"genres"`
	Cast             []CastMember `json:"cast"`
	Countries        []string     `json:"production_countries"`
	Companies        []string     `json:"production_companies"`

	Raw json.RawMessage `json:"-"`
}
