// Copyright (c) 2026 Reelist. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ngophan/reelist/pkg/pointer"
)

// # Normalization rules
//
// Every function here is deterministic and total: missing upstream fields
// normalize to nil pointers or empty slices, never to a panic. The rules are
// fixed by the wire contract with the frontend, so changing any of them is a
// breaking change.

const (
	// DetailCastLimit is the number of cast entries shown on the detail view.
	DetailCastLimit = 9

	// PersistedCastLimit is the number of cast names stored with a saved movie.
	PersistedCastLimit = 5

	// Image size variants served by the catalog CDN.
	posterSize   = "w500"
	originalSize = "original"

	// Crew roles recognized by the director/writer extraction.
	jobDirector   = "Director"
	jobWriter     = "Writer"
	jobScreenplay = "Screenplay"

	// Trailer selection.
	videoSiteYouTube = "YouTube"
	videoTypeTrailer = "Trailer"
	trailerURLFormat = "https://www.youtube.com/watch?v=%s"
)

// normalizeSummary shapes one raw search hit into a [MovieSummary].
func normalizeSummary(raw searchResult, imageBaseURL string) MovieSummary {
	return MovieSummary{
		ID:          raw.ID,
		Title:       raw.Title,
		ReleaseDate: raw.ReleaseDate,
		Poster:      imageURL(imageBaseURL, posterSize, raw.PosterPath),
		Overview:    raw.Overview,
		VoteAverage: raw.VoteAverage,
		VoteCount:   raw.VoteCount,
	}
}

// normalizeDetail shapes a raw detail payload into a total [MovieDetail].
func normalizeDetail(raw detailPayload, body json.RawMessage, imageBaseURL string) *MovieDetail {
	detail := &MovieDetail{
		ID:               raw.ID,
		Title:            raw.Title,
		ReleaseDate:      raw.ReleaseDate,
		Year:             releaseYear(raw.ReleaseDate),
		Overview:         raw.Overview,
		OriginalLanguage: raw.OriginalLanguage,
		Runtime:          raw.Runtime,
		RuntimeDisplay:   FormatRuntime(raw.Runtime),
		Revenue:          raw.Revenue,
		VoteAverage:      raw.VoteAverage,
		VoteCount:        raw.VoteCount,
		Poster:           imageURL(imageBaseURL, originalSize, raw.PosterPath),
		Backdrop:         imageURL(imageBaseURL, originalSize, raw.BackdropPath),
		Logo:             pickLogo(raw.Images, imageBaseURL),
		Trailer:          pickTrailer(raw.Videos),
		Genres:           names(raw.Genres),
		Countries:        names(raw.ProductionCountries),
		Companies:        names(raw.ProductionCompanies),
		Writers:          []string{},
		Cast:             []CastMember{},
		Raw:              body,
	}

	if raw.Credits != nil {
		detail.Director = pickDirector(raw.Credits.Crew)
		detail.Writers = collectWriters(raw.Credits.Crew)
		detail.Cast = topCast(raw.Credits.Cast, DetailCastLimit)
	}

	return detail
}

// imageURL resolves a catalog-relative image path to an absolute URL.
// A nil or empty relative path yields nil (explicit absent marker).
func imageURL(imageBaseURL, size string, relativePath *string) *string {
	if relativePath == nil || *relativePath == "" {
		return nil
	}
	return pointer.To(imageBaseURL + "/" + size + *relativePath)
}

// releaseYear extracts the leading year component of a release date string
// ("2019-11-27" → "2019"). Empty dates yield nil.
func releaseYear(releaseDate string) *string {
	if releaseDate == "" {
		return nil
	}
	year, _, _ := strings.Cut(releaseDate, "-")
	if year == "" {
		return nil
	}
	return pointer.To(year)
}

// FormatRuntime converts total minutes into the "Xh Ym" display form.
//
// # Edge Cases
//   - 0 hours  → "Ym" only (e.g. 45  → "45m")
//   - 0 minutes → "Xh" only (e.g. 120 → "2h")
//   - 0 total  → empty string (runtime unknown upstream)
func FormatRuntime(totalMinutes int) string {
	if totalMinutes <= 0 {
		return ""
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// pickDirector returns the name of the first crew entry whose job is
// "Director", or nil when absent.
func pickDirector(crew []crewEntry) *string {
	for _, member := range crew {
		if member.Job == jobDirector {
			return pointer.To(member.Name)
		}
	}
	return nil
}

// collectWriters returns the names of all crew entries credited as
// "Writer" or "Screenplay", in upstream order.
func collectWriters(crew []crewEntry) []string {
	writers := []string{}
	for _, member := range crew {
		if member.Job == jobWriter || member.Job == jobScreenplay {
			writers = append(writers, member.Name)
		}
	}
	return writers
}

// topCast returns up to limit cast entries in upstream-provided order.
func topCast(cast []castEntry, limit int) []CastMember {
	if len(cast) > limit {
		cast = cast[:limit]
	}

	members := make([]CastMember, 0, len(cast))
	for _, entry := range cast {
		members = append(members, CastMember{
			Name:      entry.Name,
			Character: entry.Character,
			Profile:   entry.ProfilePath,
		})
	}
	return members
}

// CastNames returns up to limit cast names, in order. Used to build the
// persisted cast summary.
func CastNames(cast []CastMember, limit int) []string {
	if len(cast) > limit {
		cast = cast[:limit]
	}
	names := make([]string, 0, len(cast))
	for _, member := range cast {
		names = append(names, member.Name)
	}
	return names
}

// pickLogo selects the English-locale logo when several exist, falling back
// to the first available one, and resolves it to an absolute URL.
func pickLogo(images *imagesPayload, imageBaseURL string) *string {
	if images == nil || len(images.Logos) == 0 {
		return nil
	}

	chosen := images.Logos[0]
	for _, logo := range images.Logos {
		if logo.Language == "en" {
			chosen = logo
			break
		}
	}

	if chosen.FilePath == "" {
		return nil
	}
	return pointer.To(imageBaseURL + "/" + originalSize + chosen.FilePath)
}

// pickTrailer selects the first video hosted on YouTube, typed as a trailer,
// whose title passes the official/trailer/final heuristic, and returns its
// watch URL. Returns nil when no video qualifies.
func pickTrailer(videos *videosPayload) *string {
	if videos == nil {
		return nil
	}

	for _, video := range videos.Results {
		if video.Site != videoSiteYouTube || video.Type != videoTypeTrailer {
			continue
		}
		if !trailerTitleMatches(video.Name) {
			continue
		}
		if video.Key == "" {
			continue
		}
		return pointer.To(fmt.Sprintf(trailerURLFormat, video.Key))
	}
	return nil
}

// trailerTitleMatches implements the title heuristic: the name must mention
// "official", "trailer", or "final" (case-insensitive).
func trailerTitleMatches(name string) bool {
	lowered := strings.ToLower(name)
	return strings.Contains(lowered, "official") ||
		strings.Contains(lowered, "trailer") ||
		strings.Contains(lowered, "final")
}

// names projects a slice of upstream refs onto their names, skipping blanks.
func names(refs []namedRef) []string {
	projected := []string{}
	for _, ref := range refs {
		if ref.Name != "" {
			projected = append(projected, ref.Name)
		}
	}
	return projected
}

// FormatRevenue renders a revenue figure as a dollar amount with thousands
// separators ("$312,897,920"). Zero revenue yields an empty string.
func FormatRevenue(revenue int64) string {
	if revenue <= 0 {
		return ""
	}

	digits := fmt.Sprintf("%d", revenue)
	var builder strings.Builder
	builder.WriteByte('$')

	lead := len(digits) % 3
	if lead > 0 {
		builder.WriteString(digits[:lead])
		if len(digits) > lead {
			builder.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		builder.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			builder.WriteByte(',')
		}
	}

	return builder.String()
}
