// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import "fmt"

// Anime holds the subset of Anilist media metadata consumed by extraction runs.
type Anime struct {
	// Title is the structured title metadata for the anime.
	Title struct {
		// Romaji is the romanized title of the anime.
		Romaji string `json:"romaji" jsonschema:"description=Romanized title of the anime."`
		// English is the english title of the anime.
		English string `json:"english" jsonschema:"description=English title of the anime."`
		// Native is the native title of the anime. (Usually in kanji)
		Native string `json:"native" jsonschema:"description=Native title of the anime. Usually in kanji."`
	} `json:"title"`
	// ID is the unique identifier for the anime on Anilist.
	ID int `json:"id" jsonschema:"description=ID of the anime on Anilist."`
	// CoverImage contains the URL for the anime's cover art.
	CoverImage struct {
		// ExtraLarge is the url of the extra large cover image.
		ExtraLarge string `json:"extraLarge" jsonschema:"description=URL of the extra large cover image."`
	} `json:"coverImage"`
	// Episodes is the total episode count from the Anilist API.
	// Zero means Anilist does not know the count (airing or unlisted).
	Episodes int `json:"episodes" jsonschema:"description=Total number of episodes the anime has when complete."`
	// AverageScore is the average score of the anime on Anilist.
	AverageScore int `json:"averageScore" jsonschema:"description=Average score of the anime on Anilist."`
}

// Name returns the primary display name of the anime.
// Romaji is preferred, falling back to English, then to a synthesized placeholder.
func (m *Anime) Name() string {
	if m.Title.Romaji != "" {
		return m.Title.Romaji
	}
	if m.Title.English != "" {
		return m.Title.English
	}
	return fmt.Sprintf("Anime %d", m.ID)
}
