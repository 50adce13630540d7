package notify

import (
	"context"
	"fmt"
	"time"

	"idx-signal-bot/internal/api"
	"idx-signal-bot/internal/interfaces"
)

const telegramBaseURL = "https://api.telegram.org"

// Telegram delivers alert messages through the Bot API sendMessage
// method. One notifier serves one chat.
type Telegram struct {
	client         *api.Client
	token          string
	chatID         string
	disablePreview bool
}

type Option func(*Telegram)

// WithBaseURL overrides the Bot API endpoint, for tests.
func WithBaseURL(baseURL string) Option {
	return func(t *Telegram) {
		t.client = api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithTimeout(15*time.Second),
			api.WithLogging(true),
		)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(t *Telegram) {
		t.client = api.NewClient(
			api.WithBaseURL(telegramBaseURL),
			api.WithTimeout(timeout),
			api.WithLogging(true),
		)
	}
}

// NewTelegram creates a notifier for the given bot token and chat.
func NewTelegram(token, chatID string, disablePreview bool, opts ...Option) *Telegram {
	t := &Telegram{
		client: api.NewClient(
			api.WithBaseURL(telegramBaseURL),
			api.WithTimeout(15*time.Second),
			api.WithLogging(true),
		),
		token:          token,
		chatID:         chatID,
		disablePreview: disablePreview,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts one plain-text message to the configured chat.
func (t *Telegram) Send(ctx context.Context, text string) error {
	url := fmt.Sprintf("/bot%s/sendMessage", t.token)

	resp, err := t.client.POST(ctx, url, sendMessageRequest{
		ChatID:                t.chatID,
		Text:                  text,
		DisableWebPagePreview: t.disablePreview,
	})
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}

	var result sendMessageResponse
	if err := resp.ParseJSON(&result); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram sendMessage rejected: %s", result.Description)
	}
	return nil
}

var _ interfaces.Notifier = (*Telegram)(nil)
