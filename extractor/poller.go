package extractor

import (
	"context"
	"regexp"
	"time"

	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/log"
	"github.com/anilink-cli/anilink/source"
	"github.com/spf13/viper"
)

// State enumerates the phases of the per-episode polling state machine.
type State int

const (
	// StateIdle is the initial phase, before the episode page has loaded.
	StateIdle State = iota
	// StateProbing covers the gesture/settle/scan attempt loop.
	StateProbing
	// StateFound is the terminal phase after a stream URL was discovered.
	StateFound
	// StateExhausted is the terminal phase after load failure or attempt exhaustion.
	StateExhausted
)

// String returns the lowercase phase name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProbing:
		return "probing"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Recognizers for the two supported media-container address formats.
// HLS playlists win the tie-break when both appear in the same scan.
var (
	patternHLS = regexp.MustCompile(`https?://[^\s"'<>]+\.m3u8`)
	patternMP4 = regexp.MustCompile(`https?://[^\s"'<>]+\.mp4`)
)

// FirstStreamURL scans rendered content for the first stream address of a
// supported container format. HLS is preferred over MP4 deterministically.
func FirstStreamURL(content string) (string, bool) {
	if m := patternHLS.FindString(content); m != "" {
		return m, true
	}
	if m := patternMP4.FindString(content); m != "" {
		return m, true
	}
	return "", false
}

// Poller drives the bounded polling/retry state machine that discovers a
// stream URL for one episode page.
type Poller struct {
	// MaxAttempts bounds the gesture/settle/scan loop per episode.
	MaxAttempts int
	// SettleInterval is the fixed wait between a gesture and the content scan.
	SettleInterval time.Duration
	// LoadTimeout bounds the initial page load.
	LoadTimeout time.Duration
	// Clock paces the settle waits; injectable for deterministic tests.
	Clock Clock
}

// PollerFromConfig builds a Poller from the global configuration.
func PollerFromConfig() *Poller {
	return &Poller{
		MaxAttempts:    viper.GetInt(key.ExtractorMaxAttempts),
		SettleInterval: viper.GetDuration(key.ExtractorSettleInterval),
		LoadTimeout:    viper.GetDuration(key.ExtractorLoadTimeout),
		Clock:          SystemClock{},
	}
}

// transition advances the state machine, recording the step for diagnostics.
func (p *Poller) transition(episode int, from, to State) State {
	log.Debugf("episode %d: %s -> %s", episode, from, to)
	return to
}

// Poll loads the episode page and polls the rendered content for a stream URL.
//
// Page-load failure short-circuits the attempts and marks the episode not
// found. Every other per-attempt error (gesture, content read) is contained
// to that attempt; the loop continues until a URL is found or MaxAttempts is
// exhausted. Poll never returns an error: a failed episode is a not-found
// result, not a run failure.
func (p *Poller) Poll(ctx context.Context, browser Browser, target source.EpisodeTarget) source.StreamResult {
	state := StateIdle
	result := source.StreamResult{Episode: target.Index}

	loadCtx, cancel := context.WithTimeout(ctx, p.LoadTimeout)
	defer cancel()
	if err := browser.Navigate(loadCtx, target.WatchURL); err != nil {
		log.Warnf("episode %d: page load failed: %v", target.Index, err)
		p.transition(target.Index, state, StateExhausted)
		return result
	}
	state = p.transition(target.Index, state, StateProbing)

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result.Attempts = attempt

		// The play gesture is best effort; a failure here never ends the episode.
		if err := browser.SimulateGesture(ctx); err != nil {
			log.Debugf("episode %d: gesture failed on attempt %d: %v", target.Index, attempt, err)
		}

		p.Clock.Sleep(p.SettleInterval)

		content, err := browser.Content(ctx)
		if err != nil {
			log.Debugf("episode %d: content scan failed on attempt %d: %v", target.Index, attempt, err)
			continue
		}

		if url, ok := FirstStreamURL(content); ok {
			p.transition(target.Index, state, StateFound)
			result.URL = url
			return result
		}
	}

	p.transition(target.Index, state, StateExhausted)
	return result
}
