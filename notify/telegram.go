package notify

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/anilink-cli/anilink/log"
	"github.com/anilink-cli/anilink/network"
)

// APIBase is the Telegram Bot API root. Tests override it.
var APIBase = "https://api.telegram.org"

// telegramService publishes milestone messages to a single Telegram chat.
type telegramService struct {
	token  string
	chatID string
}

// send posts one message, best effort. Notification failures are logged and
// never propagated: a dead chat must not break an extraction run.
func (t *telegramService) send(message string) {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", APIBase, t.token)

	params := url.Values{}
	params.Set("chat_id", t.chatID)
	params.Set("text", message)

	resp, err := network.Client.Get(endpoint + "?" + params.Encode())
	if err != nil {
		log.Warnf("telegram send failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("telegram send failed with status %d", resp.StatusCode)
	}
}
