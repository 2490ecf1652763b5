// Package source defines the domain models produced and consumed by extraction runs.
package source

import (
	"github.com/anilink-cli/anilink/anilist"
	"github.com/samber/mo"
)

// Title represents the catalog entry an extraction run targets.
// It is created once per run from the metadata lookup and is immutable thereafter.
type Title struct {
	// ID is the Anilist identifier of the title.
	ID int `json:"id"`
	// Name is the preferred display name (romaji, falling back to english, then a synthesized placeholder).
	Name string `json:"name"`
	// Episodes is the authoritative episode count, when the metadata service knows it.
	Episodes mo.Option[int] `json:"episodes"`
	// Cover is the URL of the extra large cover image, when available.
	Cover string `json:"cover,omitempty"`
	// Score is the average score of the title, when available.
	Score mo.Option[int] `json:"score"`
}

// TitleFromAnilist builds an immutable Title from an Anilist media record.
func TitleFromAnilist(anime *anilist.Anime) Title {
	t := Title{
		ID:    anime.ID,
		Name:  anime.Name(),
		Cover: anime.CoverImage.ExtraLarge,
	}
	if anime.Episodes > 0 {
		t.Episodes = mo.Some(anime.Episodes)
	}
	if anime.AverageScore > 0 {
		t.Score = mo.Some(anime.AverageScore)
	}
	return t
}
