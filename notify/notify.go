// Package notify delivers extraction milestones via pluggable notifiers.
//
// The default implementation publishes to a Telegram chat using credentials
// from configuration and gracefully degrades to a no-op when unconfigured.
// Extraction code depends only on the Service interface.
package notify

import (
	"fmt"
	"strings"

	"github.com/anilink-cli/anilink/key"
	"github.com/spf13/viper"
)

// Service is the notification surface exposed to extraction components.
type Service interface {
	RunStarted(title string, episodes int)
	EpisodeResolved(episode int, url string)
	EpisodeMissed(episode int)
	RunCompleted(title string, found int)
	RunFailed(id int, err error)
}

// NewService builds a notifier backed by Telegram when credentials are
// configured, and a noop implementation otherwise. Credentials use the
// BOT_TOKEN_CHAT_ID format, split on the first underscore.
func NewService() Service {
	keys := strings.TrimSpace(viper.GetString(key.TelegramKeys))
	if keys == "" {
		return noopService{}
	}

	token, chatID, ok := strings.Cut(keys, "_")
	if !ok || token == "" || chatID == "" {
		// Malformed credentials disable notifications rather than failing runs.
		return noopService{}
	}

	return &telegramService{token: token, chatID: chatID}
}

type noopService struct{}

func (noopService) RunStarted(string, int)      {}
func (noopService) EpisodeResolved(int, string) {}
func (noopService) EpisodeMissed(int)           {}
func (noopService) RunCompleted(string, int)    {}
func (noopService) RunFailed(int, error)        {}

// truncateURL shortens long stream addresses for chat readability.
func truncateURL(url string) string {
	if len(url) <= 60 {
		return url
	}
	return url[:60] + "..."
}

// ellipsize keeps error text within a chat-friendly length.
func ellipsize(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func (t *telegramService) RunStarted(title string, episodes int) {
	t.send(fmt.Sprintf("🎬 Starting extraction for %s (%d eps)", title, episodes))
}

func (t *telegramService) EpisodeResolved(episode int, url string) {
	t.send(fmt.Sprintf("✅ Ep %d: %s", episode, truncateURL(url)))
}

func (t *telegramService) EpisodeMissed(episode int) {
	t.send(fmt.Sprintf("⚠️ Ep %d: No URL found", episode))
}

func (t *telegramService) RunCompleted(title string, found int) {
	t.send(fmt.Sprintf("✅ Extraction completed for %s. Total: %d URLs", title, found))
}

func (t *telegramService) RunFailed(id int, err error) {
	t.send(fmt.Sprintf("❌ Extraction for anime %d failed: %s", id, ellipsize(err.Error(), 100)))
}
