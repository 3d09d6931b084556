// Copyright (c) 2026 Reelist. All rights reserved.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngophan/reelist/pkg/pointer"
)

const testImageBase = "https://images.example.com/t/p"

/*
TestFormatRuntime covers the "Xh Ym" display rules including the
zero-hour, zero-minute, and unknown-runtime edge cases.
*/
func TestFormatRuntime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"hours_and_minutes", 130, "2h 10m"},
		{"exact_hours", 120, "2h"},
		{"under_one_hour", 45, "45m"},
		{"single_minute", 61, "1h 1m"},
		{"zero_unknown", 0, ""},
		{"negative_defensive", -10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRuntime(tt.minutes))
		})
	}
}

/*
TestFormatRevenue checks the thousands-separated dollar rendering.
*/
func TestFormatRevenue(t *testing.T) {
	tests := []struct {
		name    string
		revenue int64
		want    string
	}{
		{"large", 312897920, "$312,897,920"},
		{"exact_thousands", 1000000, "$1,000,000"},
		{"under_thousand", 999, "$999"},
		{"single_digit", 7, "$7"},
		{"zero_unknown", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRevenue(tt.revenue))
		})
	}
}

/*
TestNormalizeSummary verifies poster URL resolution and the nil marker
for hits without a poster.
*/
func TestNormalizeSummary(t *testing.T) {
	t.Run("with_poster", func(t *testing.T) {
		summary := normalizeSummary(searchResult{
			ID:          603,
			Title:       "The Matrix",
			ReleaseDate: "1999-03-30",
			PosterPath:  pointer.To("/matrix.jpg"),
			VoteAverage: 8.2,
			VoteCount:   24000,
		}, testImageBase)

		require.NotNil(t, summary.Poster)
		assert.Equal(t, testImageBase+"/w500/matrix.jpg", *summary.Poster)
		assert.Equal(t, int64(603), summary.ID)
	})

	t.Run("missing_poster", func(t *testing.T) {
		summary := normalizeSummary(searchResult{ID: 1, Title: "Obscure"}, testImageBase)
		assert.Nil(t, summary.Poster)
	})
}

/*
TestNormalizeDetail_Credits covers director selection (first "Director"
crew entry wins), writer collection (Writer + Screenplay), and the
nine-entry cast cap.
*/
func TestNormalizeDetail_Credits(t *testing.T) {
	cast := make([]castEntry, 12)
	for i := range cast {
		cast[i] = castEntry{Name: "Actor", Character: "Role"}
	}

	raw := detailPayload{
		ID:          98,
		Title:       "Gladiator",
		ReleaseDate: "2000-05-01",
		Credits: &creditsPayload{
			Cast: cast,
			Crew: []crewEntry{
				{Name: "Editor Person", Job: "Editor"},
				{Name: "Ridley Scott", Job: "Director"},
				{Name: "Second Unit", Job: "Director"},
				{Name: "David Franzoni", Job: "Writer"},
				{Name: "John Logan", Job: "Screenplay"},
			},
		},
	}

	detail := normalizeDetail(raw, nil, testImageBase)

	require.NotNil(t, detail.Director)
	assert.Equal(t, "Ridley Scott", *detail.Director)
	assert.Equal(t, []string{"David Franzoni", "John Logan"}, detail.Writers)
	assert.Len(t, detail.Cast, DetailCastLimit)
}

/*
TestNormalizeDetail_NoCredits asserts the total-type guarantee: missing
credits produce nil director, empty writers, and empty cast rather
than nil slices or a panic.
*/
func TestNormalizeDetail_NoCredits(t *testing.T) {
	detail := normalizeDetail(detailPayload{ID: 1, Title: "Bare"}, nil, testImageBase)

	assert.Nil(t, detail.Director)
	assert.NotNil(t, detail.Writers)
	assert.Empty(t, detail.Writers)
	assert.NotNil(t, detail.Cast)
	assert.Empty(t, detail.Cast)
	assert.Nil(t, detail.Year)
	assert.Empty(t, detail.RuntimeDisplay)
}

/*
TestNormalizeDetail_Year checks year extraction from the release date.
*/
func TestNormalizeDetail_Year(t *testing.T) {
	detail := normalizeDetail(detailPayload{ID: 1, ReleaseDate: "2019-11-27"}, nil, testImageBase)

	require.NotNil(t, detail.Year)
	assert.Equal(t, "2019", *detail.Year)
}

/*
TestPickLogo verifies the English-locale preference and first-entry
fallback.
*/
func TestPickLogo(t *testing.T) {
	t.Run("prefers_english", func(t *testing.T) {
		logo := pickLogo(&imagesPayload{Logos: []logoEntry{
			{FilePath: "/de.png", Language: "de"},
			{FilePath: "/en.png", Language: "en"},
		}}, testImageBase)

		require.NotNil(t, logo)
		assert.Equal(t, testImageBase+"/original/en.png", *logo)
	})

	t.Run("falls_back_to_first", func(t *testing.T) {
		logo := pickLogo(&imagesPayload{Logos: []logoEntry{
			{FilePath: "/ja.png", Language: "ja"},
			{FilePath: "/fr.png", Language: "fr"},
		}}, testImageBase)

		require.NotNil(t, logo)
		assert.Equal(t, testImageBase+"/original/ja.png", *logo)
	})

	t.Run("no_logos", func(t *testing.T) {
		assert.Nil(t, pickLogo(&imagesPayload{}, testImageBase))
		assert.Nil(t, pickLogo(nil, testImageBase))
	})
}

/*
TestPickTrailer covers the YouTube + Trailer + title-keyword heuristic.
*/
func TestPickTrailer(t *testing.T) {
	tests := []struct {
		name   string
		videos []videoEntry
		want   *string
	}{
		{
			"official_trailer",
			[]videoEntry{{Key: "abc123", Name: "Official Trailer", Site: "YouTube", Type: "Trailer"}},
			pointer.To("https://www.youtube.com/watch?v=abc123"),
		},
		{
			"skips_non_youtube",
			[]videoEntry{
				{Key: "v1", Name: "Official Trailer", Site: "Vimeo", Type: "Trailer"},
				{Key: "v2", Name: "Final Trailer", Site: "YouTube", Type: "Trailer"},
			},
			pointer.To("https://www.youtube.com/watch?v=v2"),
		},
		{
			"skips_featurettes",
			[]videoEntry{{Key: "v1", Name: "Official Featurette", Site: "YouTube", Type: "Featurette"}},
			nil,
		},
		{
			"title_without_keywords",
			[]videoEntry{{Key: "v1", Name: "Sneak Peek", Site: "YouTube", Type: "Trailer"}},
			nil,
		},
		{"no_videos", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickTrailer(&videosPayload{Results: tt.videos})
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

/*
TestCastNames checks the persisted-cast projection and its cap.
*/
func TestCastNames(t *testing.T) {
	cast := []CastMember{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}, {Name: "F"},
	}

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, CastNames(cast, PersistedCastLimit))
	assert.Equal(t, []string{"A", "B"}, CastNames(cast[:2], PersistedCastLimit))
	assert.Empty(t, CastNames(nil, PersistedCastLimit))
}
