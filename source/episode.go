// Package source defines the domain models produced and consumed by extraction runs.
package source

import "fmt"

// EpisodeTarget identifies one episode page the extraction engine will visit.
// Indices are positive and contiguous starting at 1.
type EpisodeTarget struct {
	// Index is the 1-based episode number.
	Index int `json:"index"`
	// WatchURL is the derived episode page address.
	WatchURL string `json:"watchUrl"`
}

// NewEpisodeTarget derives the watch address for an episode of a title.
func NewEpisodeTarget(base string, titleID, index int) EpisodeTarget {
	return EpisodeTarget{
		Index:    index,
		WatchURL: fmt.Sprintf("%s/%d/episode-%d", base, titleID, index),
	}
}

// String returns the canonical display form of the target.
func (e EpisodeTarget) String() string {
	return fmt.Sprintf("Episode %d", e.Index)
}
