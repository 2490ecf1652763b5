// Package source defines the domain models produced and consumed by extraction runs.
package source

// StreamResult records the outcome of polling one episode.
type StreamResult struct {
	// Episode is the 1-based episode index.
	Episode int `json:"episode" jsonschema:"description=1-based episode index."`
	// URL is the discovered stream address. Empty means the episode was not found.
	URL string `json:"url" jsonschema:"description=Direct stream URL. Empty when no stream was discovered."`
	// Attempts is the number of polling attempts consumed at discovery or exhaustion.
	Attempts int `json:"attempts" jsonschema:"description=Polling attempts consumed at discovery or exhaustion."`
}

// Found reports whether a stream address was discovered.
func (r StreamResult) Found() bool {
	return r.URL != ""
}

// Report aggregates the per-episode outcomes of one extraction run.
// Results are ordered by ascending episode index with no duplicates.
type Report struct {
	Title Title `json:"title" jsonschema:"description=The catalog entry the run targeted."`
	// Results holds one entry per attempted episode, found or not.
	Results []StreamResult `json:"results" jsonschema:"description=Per-episode outcomes ordered by episode index."`
	// Truncated is set when the run stopped due to the global timeout
	// before exhausting the episode list.
	Truncated bool `json:"truncated" jsonschema:"description=True when the global run budget expired before all episodes were attempted."`
}

// Found returns only the results that carry a discovered stream URL,
// preserving episode order.
func (r *Report) Found() []StreamResult {
	found := make([]StreamResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Found() {
			found = append(found, res)
		}
	}
	return found
}
