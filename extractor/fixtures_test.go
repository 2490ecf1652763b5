package extractor

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// fakeClock advances only when something sleeps, making deadline and settle
// behavior deterministic.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeBrowser is a scripted Browser: per-URL navigation failures, a fixed
// probe count, and per-URL attempt thresholds after which the rendered
// content carries a stream address.
type fakeBrowser struct {
	mu sync.Mutex

	current  string
	attempts map[string]int

	navErr     map[string]error
	gestureErr error
	contentErr error

	// foundOn maps a watch URL to the attempt at which its content starts
	// carrying a stream address; zero means never.
	foundOn map[string]int
	// payload maps a watch URL to the stream address embedded in its content.
	payload map[string]string

	episodeCount int
	countErr     error
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		attempts: make(map[string]int),
		navErr:   make(map[string]error),
		foundOn:  make(map[string]int),
		payload:  make(map[string]string),
	}
}

func (b *fakeBrowser) Navigate(_ context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.navErr[url]; err != nil {
		return err
	}
	b.current = url
	b.attempts[url] = 0
	return nil
}

func (b *fakeBrowser) SimulateGesture(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attempts[b.current]++
	return b.gestureErr
}

func (b *fakeBrowser) Content(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.contentErr != nil {
		return "", b.contentErr
	}
	threshold := b.foundOn[b.current]
	if threshold > 0 && b.attempts[b.current] >= threshold {
		return fmt.Sprintf(`<html><video src="%s"></video></html>`, b.payload[b.current]), nil
	}
	return "<html><div>loading player</div></html>", nil
}

func (b *fakeBrowser) ElementCount(_ context.Context, _ string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.episodeCount, b.countErr
}
