package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anilink-cli/anilink/extractor"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/log"
	"github.com/anilink-cli/anilink/source"
	"github.com/spf13/viper"
)

// Extractor runs a full extraction for one title identifier.
type Extractor interface {
	Run(ctx context.Context, id int) (*source.Report, error)
}

// Handler serves the extraction endpoint at the service root.
type Handler struct {
	extractor Extractor
	limiter   *visitorLimiter
	welcome   string
}

// NewHandler wires a Handler from the global configuration.
func NewHandler(ex Extractor) *Handler {
	return &Handler{
		extractor: ex,
		limiter: newVisitorLimiter(
			viper.GetInt(key.ServerRatePerMinute),
			viper.GetInt(key.ServerRateBurst),
		),
		welcome: viper.GetString(key.ServerWelcomeMessage),
	}
}

// episodeEntry is the wire form of one resolved episode.
type episodeEntry struct {
	Episode int    `json:"episode"`
	URL     string `json:"url"`
}

// reportPayload is the wire form of a completed run.
type reportPayload struct {
	AnimeID   int            `json:"anime_id"`
	Title     string         `json:"title"`
	Episodes  []episodeEntry `json:"episodes"`
	Truncated bool           `json:"truncated"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	raw := identifierParam(r)
	if raw == "" {
		writeJSON(w, http.StatusOK, map[string]string{"message": h.welcome})
		return
	}

	id, err := ParseIdentifier(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if !h.limiter.Allow(r) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded, try again later"})
		return
	}

	report, err := h.extractor.Run(r.Context(), id)
	if err != nil {
		if errors.Is(err, extractor.ErrMetadataUnavailable) {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		log.Errorf("extraction for %d failed: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "extraction failed"})
		return
	}

	writeJSON(w, http.StatusOK, payloadFromReport(id, report))
}

// identifierParam picks the identifier parameter by precedence:
// anime_id, then id, then url.
func identifierParam(r *http.Request) string {
	query := r.URL.Query()
	for _, name := range []string{"anime_id", "id", "url"} {
		if value := query.Get(name); value != "" {
			return value
		}
	}
	return ""
}

// payloadFromReport keeps only the episodes whose stream was discovered.
func payloadFromReport(id int, report *source.Report) reportPayload {
	found := report.Found()
	episodes := make([]episodeEntry, 0, len(found))
	for _, result := range found {
		episodes = append(episodes, episodeEntry{Episode: result.Episode, URL: result.URL})
	}

	return reportPayload{
		AnimeID:   id,
		Title:     report.Title.Name,
		Episodes:  episodes,
		Truncated: report.Truncated,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("write response: %v", err)
	}
}
