// Package extractor implements the episode stream-URL extraction engine:
// episode count reconciliation, the bounded per-episode polling state machine,
// browser session lifecycle, and the single-flight run coordinator.
package extractor

import "context"

// Browser is the capability surface the engine needs from a browser-automation
// backend. The production implementation is Session (chromedp); tests use
// fixture implementations so the state machine and reconciliation logic can be
// verified without a real browser.
type Browser interface {
	// Navigate loads the given address, honoring ctx for the page-load bound.
	Navigate(ctx context.Context, url string) error

	// SimulateGesture issues one best-effort play gesture against the current page.
	SimulateGesture(ctx context.Context) error

	// Content returns the currently rendered page markup.
	Content(ctx context.Context) (string, error)

	// ElementCount counts the elements matching a CSS selector on the current page.
	ElementCount(ctx context.Context, selector string) (int, error)
}
